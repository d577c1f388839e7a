package shell

import (
	"io"
	"os"
	"sync"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/sys"
)

// Replaced in tests.
var osExit = os.Exit

// Holds a function to run before the process exits because of a signal.
type exitHook struct {
	mu sync.Mutex
	f  func()
}

func (h *exitHook) set(f func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.f = f
}

func (h *exitHook) run() {
	h.mu.Lock()
	f := h.f
	h.mu.Unlock()
	if f != nil {
		f()
	}
}

// Starts handling signals. The returned function stops it.
func initSignal(stderr io.Writer, hook *exitHook) func() {
	sigCh := sys.NotifySignals()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for sig := range sigCh {
			logger.Println("signal", sys.SignalName(sig))
			handleSignal(sig, stderr, hook)
		}
	}()
	return func() {
		sys.StopSignals(sigCh)
		close(sigCh)
		<-done
	}
}

// Runs the exit hook and exits.
func exitWith(hook *exitHook, status int) {
	logger.Println("exiting with status", status)
	hook.run()
	osExit(status)
}
