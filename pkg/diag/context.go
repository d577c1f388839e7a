package diag

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Context points at a span of a named piece of source code.
type Context struct {
	Name   string
	Source string
	Ranging
}

// NewContext returns a Context for the span of r in source.
func NewContext(name, source string, r Ranger) *Context {
	return &Context{Name: name, Source: source, Ranging: r.Range()}
}

// Markers around the highlighted span. An empty span is shown as
// emptyCulprit.
var (
	culpritStart = "\033[1;4m"
	culpritEnd   = "\033[m"
	emptyCulprit = "^"
)

// The highlighted span split into the lines it touches. before is the start
// of the first line up to the span; after is the rest of the last line.
type excerpt struct {
	line, col int
	before    string
	culprit   string
	after     string
}

func (c *Context) excerpt() excerpt {
	pre, culprit, post := c.Source[:c.From], c.Source[c.From:c.To], c.Source[c.To:]
	lineStart := strings.LastIndexByte(pre, '\n') + 1
	e := excerpt{
		line:   strings.Count(pre, "\n") + 1,
		col:    utf8.RuneCountInString(pre[lineStart:]) + 1,
		before: pre[lineStart:],
	}
	if trimmed, ok := strings.CutSuffix(culprit, "\n"); ok {
		e.culprit = trimmed
	} else {
		e.culprit = culprit
		e.after, _, _ = strings.Cut(post, "\n")
	}
	return e
}

// Returns the start of the span as name:line:col. The column counts
// codepoints.
func (c *Context) position() string {
	e := c.excerpt()
	return fmt.Sprintf("%s:%d:%d", c.Name, e.line, e.col)
}

func (c *Context) badPosition() string {
	switch {
	case c.From == -1:
		return c.Name + ", unknown position"
	case c.From < 0 || c.From > c.To || c.To > len(c.Source):
		return fmt.Sprintf("%s, invalid position %d-%d", c.Name, c.From, c.To)
	}
	return ""
}

// Show returns the position of the span followed by the source lines it
// touches, with the span highlighted. Lines after the first are prefixed with
// indent and aligned with the first.
func (c *Context) Show(indent string) string {
	if msg := c.badPosition(); msg != "" {
		return msg
	}
	prefix := c.position() + ": "
	indent += strings.Repeat(" ", utf8.RuneCountInString(prefix))

	e := c.excerpt()
	culprit := e.culprit
	if culprit == "" {
		culprit = emptyCulprit
	}
	lines := strings.Split(culprit, "\n")
	for i, line := range lines {
		lines[i] = culpritStart + line + culpritEnd
	}
	return prefix + e.before + strings.Join(lines, "\n"+indent) + e.after
}
