// Copyright 2025 The libsee Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && amd64 && gc

package unit

// tscAuxCPUMask selects the CPU number from IA32_TSC_AUX. Linux stores
// the NUMA node in the bits above it.
const tscAuxCPUMask = 0xfff

// rdtscpBit is the RDTSCP feature flag in CPUID leaf 0x80000001, EDX.
const rdtscpBit = 1 << 27

var useTSCAux = hasRDTSCP()

//go:nosplit
func current() uint32 {
	if useTSCAux {
		return tscAux() & tscAuxCPUMask
	}
	return procID()
}

func source() string {
	if useTSCAux {
		return "tsc_aux"
	}
	return "proc"
}

func hasRDTSCP() bool {
	maxExt, _, _, _ := cpuid(0x80000000, 0)
	if maxExt < 0x80000001 {
		return false
	}
	_, _, _, edx := cpuid(0x80000001, 0)
	return edx&rdtscpBit != 0
}

// cpuid executes the CPUID instruction. Implemented in unit_linux_amd64.s.
func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32)

// tscAux returns IA32_TSC_AUX as loaded by RDTSCP. Implemented in
// unit_linux_amd64.s.
//
//go:noescape
func tscAux() uint32
