// Lispy is an interactive evaluator for prefix arithmetic written as
// s-expressions, such as (+ 1 (* 2 3)). It also runs scripts of such
// expressions and can act as a language server for them.
package main

import (
	"os"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/buildinfo"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/lsp"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/prog"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program{}, lsp.Program{}, shell.Program{})))
}
