//go:build unix

package sys

import (
	"os"
	"syscall"
	"testing"

	"github.com/creack/pty"
)

func TestIsATTY_PTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("pty.Open:", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	if !IsATTY(tty.Fd()) {
		t.Errorf("IsATTY(tty) -> false, want true")
	}
}

func TestSignalName(t *testing.T) {
	for sig, want := range map[os.Signal]string{
		syscall.SIGINT:  "SIGINT",
		syscall.SIGTERM: "SIGTERM",
		syscall.SIGHUP:  "SIGHUP",
		syscall.SIGUSR1: "SIGUSR1",
	} {
		if got := SignalName(sig); got != want {
			t.Errorf("SignalName(%v) = %q, want %q", sig, got, want)
		}
	}
}

func TestNotifySignals(t *testing.T) {
	sigCh := NotifySignals()
	defer StopSignals(sigCh)
	syscall.Kill(syscall.Getpid(), syscall.SIGUSR2)
	if sig := <-sigCh; sig != syscall.SIGUSR2 {
		t.Errorf("got signal %v, want SIGUSR2", sig)
	}
}
