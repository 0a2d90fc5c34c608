//go:build !unix

package engine

func (e *Engine) watchSignals() (stop func()) {
	e.log.Warn().Msg("LIBSEE_SIGNALS is not supported on this platform")
	return func() {}
}
