package shell

import (
	"errors"
	"strings"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/store/storedefs"
	"github.com/peterh/liner"
)

// An editor for terminals, with line editing and history. It always reads
// from the process's stdin.
type linerEditor struct {
	state *liner.State
}

// Creates a linerEditor whose history is seeded with the last limit entries
// of st, which may be nil.
func newLinerEditor(st storedefs.Store, limit int) *linerEditor {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	if st != nil {
		cmds, err := st.LastCmds(limit)
		if err != nil {
			logger.Println("failed to load history:", err)
		}
		for _, cmd := range cmds {
			state.AppendHistory(historyEntry(cmd.Text))
		}
	}
	return &linerEditor{state}
}

func (ed *linerEditor) ReadLine(prompt string) (string, error) {
	line, err := ed.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", errInterrupted
	}
	return line, err
}

func (ed *linerEditor) AddHistory(line string) {
	ed.state.AppendHistory(historyEntry(line))
}

func (ed *linerEditor) Close() error { return ed.state.Close() }

// The line editor recalls one line at a time.
func historyEntry(code string) string {
	return strings.ReplaceAll(code, "\n", " ")
}
