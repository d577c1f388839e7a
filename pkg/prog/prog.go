// Package prog parses the command line of lispy and dispatches to one of its
// subprograms: the build info printer, the language server or the shell.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/logutil"
)

// Program is one mode of operation of lispy. The fds are stdin, stdout and
// stderr; args are the arguments left after flag parsing.
type Program interface {
	Run(fds [3]*os.File, f *Flags, args []string) error
}

// Flags holds the parsed command-line flags.
type Flags struct {
	Log string

	Help, Version, BuildInfo, JSON bool

	CodeInArg, CheckOnly bool

	Config   string
	NoConfig bool

	DB string

	LSP bool
}

var flagDefs = []struct {
	name, usage string
	ptr         func(*Flags) any
}{
	{"log", "a file to write debug log to", func(f *Flags) any { return &f.Log }},
	{"help", "show usage help and quit", func(f *Flags) any { return &f.Help }},
	{"version", "show version and quit", func(f *Flags) any { return &f.Version }},
	{"buildinfo", "show build info and quit", func(f *Flags) any { return &f.BuildInfo }},
	{"json", "show output in JSON; works with -buildinfo, -version and -checkonly",
		func(f *Flags) any { return &f.JSON }},
	{"c", "take the first argument as code to evaluate", func(f *Flags) any { return &f.CodeInArg }},
	{"checkonly", "parse but do not evaluate", func(f *Flags) any { return &f.CheckOnly }},
	{"config", "path to the configuration file", func(f *Flags) any { return &f.Config }},
	{"noconfig", "do not read the configuration file", func(f *Flags) any { return &f.NoConfig }},
	{"db", "path to the history database", func(f *Flags) any { return &f.DB }},
	{"lsp", "run the language server", func(f *Flags) any { return &f.LSP }},
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("lispy", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, def := range flagDefs {
		switch p := def.ptr(f).(type) {
		case *string:
			fs.StringVar(p, def.name, "", def.usage)
		case *bool:
			fs.BoolVar(p, def.name, false, def.usage)
		}
	}
	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: lispy [flags] [script]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses the flags in args[1:], then runs p. It returns the exit status.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	fs := newFlagSet(f)
	if err := fs.Parse(args[1:]); err != nil {
		// -help is defined but -h is not, so ErrHelp here means -h.
		if errors.Is(err, flag.ErrHelp) {
			err = errors.New("flag provided but not defined: -h")
		}
		fmt.Fprintln(fds[2], err)
		usage(fds[2], fs)
		return 2
	}

	if f.Log != "" {
		if err := logutil.SetOutputFile(f.Log); err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}
	if f.Help {
		usage(fds[1], fs)
		return 0
	}

	err := p.Run(fds, f, fs.Args())
	var exit exitError
	var bad badUsageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exit):
		return exit.code
	case errors.As(err, &bad):
		fmt.Fprintln(fds[2], bad.msg)
		usage(fds[2], fs)
		return 2
	default:
		fmt.Fprintln(fds[2], err)
		return 2
	}
}

// Composite returns a Program that runs the first of programs that does not
// return ErrNotSuitable.
func Composite(programs ...Program) Program { return composite(programs) }

type composite []Program

func (c composite) Run(fds [3]*os.File, f *Flags, args []string) error {
	for _, p := range c {
		if err := p.Run(fds, f, args); err != ErrNotSuitable {
			return err
		}
	}
	return ErrNotSuitable
}

// ErrNotSuitable is returned by a Program that does not handle the given
// flags, so that Composite moves on to the next one.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")

// BadUsage returns an error that makes Run print msg and the usage, and exit
// with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns an error that makes Run exit with the given code and print
// nothing. Exit(0) is nil.
func Exit(code int) error {
	if code == 0 {
		return nil
	}
	return exitError{code}
}

type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
