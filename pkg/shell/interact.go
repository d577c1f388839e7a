package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/buildinfo"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/config"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/diag"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/eval"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/parse"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/prog"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/store/storedefs"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/sys"
)

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	Evaler *eval.Evaler
	Config *config.Config
	// Where entered lines are saved. May be nil.
	Store storedefs.Store

	exitHook *exitHook
}

// Exit status when the user presses Ctrl-C at the prompt, the same as being
// killed by SIGINT.
const interruptedExit = 130

// Interact runs an interactive session: it reads one input at a time,
// evaluates it and prints the result followed by an empty line, until the end
// of input.
func Interact(fds [3]*os.File, cfg *InteractConfig) error {
	if cfg.Config.Banner {
		fmt.Fprintln(fds[1], "Lispy Version", buildinfo.Value.Version)
		fmt.Fprintln(fds[1], "Press Ctrl+C to Exit")
		fmt.Fprintln(fds[1])
	}

	var ed editor
	if fds[0] == os.Stdin && sys.IsATTY(fds[0].Fd()) && sys.IsATTY(fds[1].Fd()) {
		ed = newLinerEditor(cfg.Store, cfg.Config.History.Limit)
	} else {
		ed = newMinEditor(fds[0], fds[2])
	}
	if cfg.exitHook != nil {
		cfg.exitHook.set(func() { ed.Close() })
	}
	defer func() { ed.Close() }()

	cmdNum := 0
	for {
		code, err := readCode(ed, cfg.Config.Prompt, cfg.Config.Continuation)
		if err == io.EOF {
			break
		} else if err == errInterrupted {
			return prog.Exit(interruptedExit)
		} else if err != nil {
			fmt.Fprintln(fds[2], "Editor error:", err)
			if _, isMinEditor := ed.(*minEditor); isMinEditor {
				return err
			}
			fmt.Fprintln(fds[2], "Falling back to basic line editor")
			ed.Close()
			ed = newMinEditor(fds[0], fds[2])
			continue
		}
		if strings.TrimSpace(code) == "" {
			continue
		}
		cmdNum++

		ed.AddHistory(code)
		if cfg.Store != nil {
			if _, err := cfg.Store.AddCmd(code); err != nil {
				logger.Println("failed to add input to history:", err)
			}
		}

		src := parse.Source{Name: fmt.Sprintf("[tty %v]", cmdNum), Code: code}
		v, err := cfg.Evaler.Eval(src)
		if v == nil {
			diag.ShowError(fds[2], err)
			continue
		}
		fmt.Fprintln(fds[1], cfg.Evaler.Render(v))
		fmt.Fprintln(fds[1])
	}
	return nil
}
