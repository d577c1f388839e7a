//go:build unix

package shell

import (
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/sys"
)

func handleSignal(sig os.Signal, stderr io.Writer, hook *exitHook) {
	switch sig {
	case syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
		// Follow the convention of shells for processes killed by a signal.
		exitWith(hook, 128+int(sig.(syscall.Signal)))
	case syscall.SIGHUP:
		exitWith(hook, 0)
	case syscall.SIGUSR1:
		fmt.Fprint(stderr, sys.DumpStack())
	}
}
