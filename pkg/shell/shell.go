// Package shell is the entry point for the terminal interface of lispy.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/config"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/eval"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/logutil"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/prog"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/store"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram. It always runs.
type Program struct{}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if f.CodeInArg && len(args) == 0 {
		return prog.BadUsage("-c requires an argument")
	}
	if f.CheckOnly && len(args) == 0 {
		return prog.BadUsage("-checkonly requires a script")
	}

	cfg := loadConfig(fds[2], f)
	ev := eval.NewEvaler()
	ev.SetPrinter(cfg.Printer())

	hook := &exitHook{}
	cleanup := initSignal(fds[2], hook)
	defer cleanup()

	if len(args) > 0 {
		exit := script(ev, fds, args, &scriptCfg{
			Cmd: f.CodeInArg, CheckOnly: f.CheckOnly, JSON: f.JSON})
		return prog.Exit(exit)
	}

	st := openHistory(fds[2], f, cfg)
	if st != nil {
		defer st.Close()
	}
	return Interact(fds, &InteractConfig{
		Evaler: ev, Config: cfg, Store: st, exitHook: hook})
}

// Loads the configuration file named by -config, or the default one. Problems
// are reported as warnings; the defaults are used in that case.
func loadConfig(stderr io.Writer, f *prog.Flags) *config.Config {
	if f.NoConfig {
		return config.Default()
	}
	path := f.Config
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			fmt.Fprintln(stderr, "Warning:", err)
			return config.Default()
		}
	} else if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(stderr, "Warning: config file %s does not exist\n", path)
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(stderr, "Warning:", err)
	}
	return cfg
}

// Opens the history database if it is enabled, creating its directory when
// needed. Returns nil if the history is disabled or can't be opened.
func openHistory(stderr io.Writer, f *prog.Flags, cfg *config.Config) store.DBStore {
	if !cfg.History.Enabled {
		return nil
	}
	path := f.DB
	if path == "" {
		path = cfg.History.DB
	}
	if path == "" {
		var err error
		path, err = config.DefaultDBPath()
		if err != nil {
			fmt.Fprintln(stderr, "Warning:", err)
			return nil
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		fmt.Fprintln(stderr, "Warning: cannot create directory for history:", err)
		return nil
	}
	st, err := store.NewStore(path)
	if err != nil {
		fmt.Fprintln(stderr, "Warning: cannot open history database:", err)
		fmt.Fprintln(stderr, "Input history will not be saved.")
		return nil
	}
	logger.Println("opened history database", path)
	return st
}
