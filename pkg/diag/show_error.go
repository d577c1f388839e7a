package diag

import (
	"fmt"
	"io"
)

// Shower is implemented by errors that can show themselves with source
// context. Lines after the first start with indent.
type Shower interface {
	Show(indent string) string
}

// ShowError writes err to w, with source context if err is a [Shower].
func ShowError(w io.Writer, err error) {
	if s, ok := err.(Shower); ok {
		fmt.Fprintln(w, s.Show(""))
		return
	}
	Complain(w, err.Error())
}

// Complain writes msg to w in bold red, followed by a newline.
func Complain(w io.Writer, msg string) { fmt.Fprintf(w, "\033[31;1m%s\033[m\n", msg) }

// Complainf is Complain with a format string.
func Complainf(w io.Writer, format string, args ...any) {
	Complain(w, fmt.Sprintf(format, args...))
}
