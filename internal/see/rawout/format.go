// Copyright 2025 The libsee Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rawout

import (
	"errors"
	"math"
)

// DefaultSeparator is the digit-grouping separator used in reports. An
// underscore keeps grouped numbers free of commas, so report rows stay
// comma-separated, and it is the digit separator of Go literals.
const DefaultSeparator = '_'

// maxUintLen is the longest decimal uint64 with a separator after every
// third digit: 20 digits and 6 separators.
const maxUintLen = 26

// maxFixedDigits bounds the fractional digits AppendFixed produces.
const maxFixedDigits = 18

var pow10 = [maxFixedDigits + 1]uint64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18,
}

// ErrSyntax is returned by ParseUint for text that is not a grouped
// decimal number.
var ErrSyntax = errors.New("rawout: invalid number syntax")

// ErrRange is returned by ParseUint for numbers that overflow uint64.
var ErrRange = errors.New("rawout: number out of range")

// AppendUint appends the decimal text of v to dst. When sep is not zero it
// is inserted between groups of three digits, counting from the right.
// Zero is formatted as "0".
func AppendUint(dst []byte, v uint64, sep byte) []byte {
	var buf [maxUintLen]byte
	i := len(buf)
	digits := 0
	for {
		if sep != 0 && digits > 0 && digits%3 == 0 {
			i--
			buf[i] = sep
		}
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
		digits++
		if v == 0 {
			break
		}
	}
	return append(dst, buf[i:]...)
}

// AppendFixed appends v with exactly digits fractional digits, rounding
// half away from zero. Negative values get a leading '-' followed by the
// formatted absolute value. NaN and infinities are spelled "NaN", "+Inf"
// and "-Inf". digits is clamped to [0, 18].
func AppendFixed(dst []byte, v float64, digits int) []byte {
	switch {
	case math.IsNaN(v):
		return append(dst, "NaN"...)
	case math.IsInf(v, 1):
		return append(dst, "+Inf"...)
	case math.IsInf(v, -1):
		return append(dst, "-Inf"...)
	}
	if digits < 0 {
		digits = 0
	}
	if digits > maxFixedDigits {
		digits = maxFixedDigits
	}
	if math.Signbit(v) && v != 0 {
		dst = append(dst, '-')
		v = -v
	}

	scale := pow10[digits]
	scaled := v*float64(scale) + 0.5
	if scaled >= math.MaxUint64 {
		return appendLarge(dst, v, digits)
	}
	n := uint64(scaled)
	dst = AppendUint(dst, n/scale, 0)
	if digits == 0 {
		return dst
	}
	dst = append(dst, '.')
	return appendZeroPadded(dst, n%scale, digits)
}

// appendZeroPadded appends v left-padded with zeros to width digits.
func appendZeroPadded(dst []byte, v uint64, width int) []byte {
	var buf [maxFixedDigits]byte
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[:width]...)
}

// appendLarge formats magnitudes too large for the scaled-integer path.
// The integer part is produced digit by digit from the float, so digits
// beyond float64 precision are not meaningful; the fraction is all zeros.
func appendLarge(dst []byte, v float64, digits int) []byte {
	var buf [310]byte
	i := len(buf)
	whole := math.Floor(v)
	for whole >= 1 && i > 0 {
		d := math.Mod(whole, 10)
		i--
		buf[i] = byte('0' + int(d))
		whole = math.Floor(whole / 10)
	}
	dst = append(dst, buf[i:]...)
	if digits > 0 {
		dst = append(dst, '.')
		for j := 0; j < digits; j++ {
			dst = append(dst, '0')
		}
	}
	return dst
}

// AppendPadLeft appends field to dst, preceded by enough spaces to make
// it width bytes wide. A field already as wide as width, or wider, is
// appended unchanged: padding never truncates.
func AppendPadLeft(dst, field []byte, width int) []byte {
	for n := width - len(field); n > 0; n-- {
		dst = append(dst, ' ')
	}
	return append(dst, field...)
}

// ParseUint parses text produced by AppendUint. Separators may appear
// between digits; any byte that is neither a digit nor sep is an error.
func ParseUint(b []byte, sep byte) (uint64, error) {
	if len(b) == 0 {
		return 0, ErrSyntax
	}
	var v uint64
	prevDigit := false
	for i, c := range b {
		if sep != 0 && c == sep {
			if !prevDigit || i == len(b)-1 {
				return 0, ErrSyntax
			}
			prevDigit = false
			continue
		}
		if c < '0' || c > '9' {
			return 0, ErrSyntax
		}
		d := uint64(c - '0')
		if v > (math.MaxUint64-d)/10 {
			return 0, ErrRange
		}
		v = v*10 + d
		prevDigit = true
	}
	return v, nil
}
