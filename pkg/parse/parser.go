package parse

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/diag"
)

// parser maintains some mutable states of parsing.
//
// NOTE: The src member is assumed to be valid UTF-8.
type parser struct {
	srcName string
	src     string
	pos     int
	errors  []*Error
}

// Error is a parse error.
type Error = diag.Error[ErrorTag]

// ErrorTag parameterizes [diag.Error] to define [Error].
type ErrorTag struct{}

func (ErrorTag) ErrorTag() string { return "parse error" }

const eof rune = -1

func (ps *parser) peek() rune {
	return ps.peekAt(0)
}

// peekAt returns the rune that is i runes after the current position.
func (ps *parser) peekAt(i int) rune {
	rest := ps.src[ps.pos:]
	for ; i > 0; i-- {
		if rest == "" {
			return eof
		}
		_, s := utf8.DecodeRuneInString(rest)
		rest = rest[s:]
	}
	if rest == "" {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r
}

func (ps *parser) next() rune {
	if ps.pos == len(ps.src) {
		return eof
	}
	r, s := utf8.DecodeRuneInString(ps.src[ps.pos:])
	ps.pos += s
	return r
}

func (ps *parser) errorp(r diag.Ranger, e error) {
	err := &Error{
		Message: e.Error(),
		Context: *diag.NewContext(ps.srcName, ps.src, r),
		Partial: r.Range().From == len(ps.src),
	}
	ps.errors = append(ps.errors, err)
}

func (ps *parser) error(e error) {
	end := ps.pos
	if end < len(ps.src) {
		_, s := utf8.DecodeRuneInString(ps.src[ps.pos:])
		end += s
	}
	ps.errorp(diag.Ranging{From: ps.pos, To: end}, e)
}

func (ps *parser) errorUnexpected(r rune) {
	ps.error(fmt.Errorf("unexpected rune %q", r))
}

// UnpackErrors returns the constituent parse errors if the given error contains
// one or more parse errors. Otherwise it returns nil.
func UnpackErrors(e error) []*Error {
	return diag.UnpackErrors[ErrorTag](e)
}

// IsPartial reports whether err consists only of parse errors caused by the
// input ending prematurely, such as an unclosed group. Appending more input
// may fix such errors.
func IsPartial(err error) bool {
	errs := UnpackErrors(err)
	if len(errs) == 0 {
		return false
	}
	for _, e := range errs {
		if !e.Partial {
			return false
		}
	}
	return true
}

func newError(text string, shouldbe ...string) error {
	if len(shouldbe) == 0 {
		return errors.New(text)
	}
	var sb strings.Builder
	if len(text) > 0 {
		sb.WriteString(text + ", ")
	}
	sb.WriteString("should be " + shouldbe[0])
	for i, opt := range shouldbe[1:] {
		if i == len(shouldbe)-2 {
			sb.WriteString(" or ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(opt)
	}
	return errors.New(sb.String())
}
