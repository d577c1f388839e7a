//go:build !unix

package shell

import (
	"io"
	"os"
)

func handleSignal(sig os.Signal, stderr io.Writer, hook *exitHook) {
	if sig == os.Interrupt {
		exitWith(hook, interruptedExit)
	}
}
