package shell

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/diag"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/eval"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/parse"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/read"
)

type scriptCfg struct {
	Cmd       bool
	CheckOnly bool
	JSON      bool
}

// Runs the script named by args[0], or the code in args[0] with -c, and
// returns the exit status. Expressions on the same line are evaluated as one
// group and its result printed, the same as a line typed interactively. No
// expression is evaluated if the script does not parse.
func script(ev *eval.Evaler, fds [3]*os.File, args []string, cfg *scriptCfg) int {
	src, err := loadScript(args[0], cfg.Cmd)
	if err != nil {
		fmt.Fprintln(fds[2], err)
		return 2
	}

	tree, parseErr := parse.Parse(src)
	switch {
	case cfg.CheckOnly && cfg.JSON:
		fmt.Fprintf(fds[1], "%s\n", errorsToJSON(parseErr))
	case parseErr != nil:
		diag.ShowError(fds[2], parseErr)
	}
	if parseErr != nil {
		return 2
	}
	if cfg.CheckOnly {
		return 0
	}

	for _, line := range parse.GroupByLine(src.Code, tree.Root) {
		fmt.Fprintln(fds[1], ev.Render(eval.Eval(read.Node(line))))
	}
	return 0
}

func loadScript(arg string, isCode bool) (parse.Source, error) {
	if isCode {
		return parse.Source{Name: "code from -c", Code: arg}, nil
	}
	path, err := filepath.Abs(arg)
	if err != nil {
		return parse.Source{}, fmt.Errorf("cannot get full path of script %q: %w", arg, err)
	}
	code, err := readFileUTF8(path)
	if err != nil {
		return parse.Source{}, fmt.Errorf("cannot read script %q: %w", path, err)
	}
	return parse.Source{Name: path, Code: code, IsFile: true}, nil
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(path string) (string, error) {
	content, err := os.ReadFile(path)
	switch {
	case err != nil:
		return "", err
	case !utf8.Valid(content):
		return "", errSourceNotUTF8
	}
	return string(content), nil
}

// One parse error in the output of -checkonly -json.
type jsonError struct {
	FileName string `json:"fileName"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Message  string `json:"message"`
}

// Returns a JSON array of the parse errors in err, which may be nil.
func errorsToJSON(err error) []byte {
	errs := []jsonError{}
	for _, e := range parse.UnpackErrors(err) {
		errs = append(errs, jsonError{e.Context.Name, e.Context.From, e.Context.To, e.Message})
	}
	data, err := json.Marshal(errs)
	if err != nil {
		return []byte(`[{"message":"cannot convert errors to JSON"}]`)
	}
	return data
}
