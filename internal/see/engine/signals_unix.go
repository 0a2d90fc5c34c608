//go:build unix

package engine

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// watchSignals finalizes the engine when the process receives SIGINT or
// SIGTERM, then delivers the signal again with its default disposition
// so the process still dies from it. The returned function stops
// watching.
func (e *Engine) watchSignals() (stop func()) {
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(ch, unix.SIGINT, unix.SIGTERM)

	var once sync.Once
	stop = func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
		})
	}

	go func() {
		select {
		case sig := <-ch:
			e.log.Debug().Str("signal", sig.String()).Msg("Finalizing on signal")
			e.Finalize()
			stop()
			if s, ok := sig.(syscall.Signal); ok {
				_ = unix.Kill(unix.Getpid(), s)
			}
		case <-done:
		}
	}()
	return stop
}
