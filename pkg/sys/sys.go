// Package sys provides system utilities with the same API across OSes.
package sys

import (
	"os"
	"os/signal"
	"runtime"

	"github.com/mattn/go-isatty"
)

const sigsChanBufferSize = 256

// NotifySignals returns a channel on which the signals the shell handles get
// delivered.
func NotifySignals() chan os.Signal { return notifySignals() }

// StopSignals stops the delivery of signals to a channel returned by
// NotifySignals.
func StopSignals(sigCh chan os.Signal) { signal.Stop(sigCh) }

// SignalName returns the conventional name of a signal, like "SIGINT".
func SignalName(sig os.Signal) string { return signalName(sig) }

// IsATTY determines whether the given file is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

const dumpStackBufSizeInit = 8192

// DumpStack returns the stack traces of all goroutines.
func DumpStack() string {
	buf := make([]byte, dumpStackBufSizeInit)
	for {
		n := runtime.Stack(buf, true)
		if n < cap(buf) {
			return string(buf[:n])
		}
		buf = make([]byte, cap(buf)*2)
	}
}
