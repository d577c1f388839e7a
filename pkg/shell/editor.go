package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/parse"
)

// This type is the interface that the line editor has to satisfy.
type editor interface {
	// ReadLine shows the prompt and reads one line, without the line ending.
	ReadLine(prompt string) (string, error)
	AddHistory(line string)
	Close() error
}

// Returned by ReadLine when the user presses Ctrl-C.
var errInterrupted = errors.New("interrupted")

type minEditor struct {
	in  *bufio.Reader
	out io.Writer
}

func newMinEditor(in, out *os.File) *minEditor {
	return &minEditor{bufio.NewReader(in), out}
}

func (ed *minEditor) ReadLine(prompt string) (string, error) {
	fmt.Fprint(ed.out, prompt)
	line, err := ed.in.ReadString('\n')
	if err == io.EOF && line != "" {
		// The last line has no line ending; report EOF on the next call.
		err = nil
	}
	return chopLineEnding(line), err
}

func (ed *minEditor) AddHistory(string) {}

func (ed *minEditor) Close() error { return nil }

// Reads one input. While the input so far is an unfinished expression, more
// lines are read with the continuation prompt and joined with newlines.
func readCode(ed editor, prompt, continuation string) (string, error) {
	var sb strings.Builder
	for {
		p := prompt
		if sb.Len() > 0 {
			p = continuation
		}
		line, err := ed.ReadLine(p)
		if err != nil {
			if err == io.EOF && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
		_, err = parse.Parse(parse.Source{Code: sb.String()})
		if !parse.IsPartial(err) {
			return sb.String(), nil
		}
	}
}

func chopLineEnding(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	} else if strings.HasSuffix(s, "\n") {
		return s[:len(s)-1]
	}
	return s
}
