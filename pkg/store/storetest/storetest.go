// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"testing"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/store/storedefs"
	"github.com/google/go-cmp/cmp"
)

var (
	cmds     = []string{"(+ 1 2)", "(* 3 4)", "(- 5)", "(% 7 2)"}
	wantCmds = []storedefs.Cmd{
		{Text: cmds[0], Seq: 1},
		{Text: cmds[1], Seq: 2},
		{Text: cmds[2], Seq: 3},
		{Text: cmds[3], Seq: 4},
	}
)

// TestCmd tests the command history functionality of a Store.
func TestCmd(t *testing.T, store storedefs.Store) {
	startSeq, err := store.NextCmdSeq()
	if startSeq != 1 || err != nil {
		t.Errorf("store.NextCmdSeq() -> (%v, %v), want (1, nil)",
			startSeq, err)
	}

	// AddCmd
	for i, cmd := range cmds {
		wantSeq := startSeq + i
		seq, err := store.AddCmd(cmd)
		if seq != wantSeq || err != nil {
			t.Errorf("store.AddCmd(%v) -> (%v, %v), want (%v, nil)",
				cmd, seq, err, wantSeq)
		}
	}

	endSeq, err := store.NextCmdSeq()
	wantedEndSeq := startSeq + len(cmds)
	if endSeq != wantedEndSeq || err != nil {
		t.Errorf("store.NextCmdSeq() -> (%v, %v), want (%v, nil)",
			endSeq, err, wantedEndSeq)
	}

	// CmdsWithSeq
	tests := []struct {
		name     string
		from     int
		upto     int
		wantCmds []storedefs.Cmd
	}{
		{"empty range", 1, 1, nil},
		{"all commands", 1, 5, wantCmds},
		{"upto is larger than the last command", 1, 100, wantCmds},
		{"from is smaller than the first command", 0, 3, wantCmds[:2]},
		{"range in the middle", 2, 4, wantCmds[1:3]},
	}
	for _, test := range tests {
		got, err := store.CmdsWithSeq(test.from, test.upto)
		if err != nil {
			t.Errorf("%s: store.CmdsWithSeq(%v, %v) -> error %v",
				test.name, test.from, test.upto, err)
		}
		if diff := cmp.Diff(test.wantCmds, got); diff != "" {
			t.Errorf("%s: store.CmdsWithSeq(%v, %v) (-want +got):\n%s",
				test.name, test.from, test.upto, diff)
		}
	}

	// LastCmds
	for _, test := range []struct {
		n    int
		want []storedefs.Cmd
	}{
		{0, nil},
		{1, wantCmds[3:]},
		{2, wantCmds[2:]},
		{10, wantCmds},
	} {
		got, err := store.LastCmds(test.n)
		if err != nil {
			t.Errorf("store.LastCmds(%v) -> error %v", test.n, err)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("store.LastCmds(%v) (-want +got):\n%s", test.n, diff)
		}
	}

	// Cmd
	for i, wantCmd := range cmds {
		seq := i + startSeq
		cmd, err := store.Cmd(seq)
		if cmd != wantCmd || err != nil {
			t.Errorf("store.Cmd(%v) -> (%v, %v), want (%v, nil)",
				seq, cmd, err, wantCmd)
		}
	}
	if _, err := store.Cmd(100); err != storedefs.ErrNoMatchingCmd {
		t.Errorf("store.Cmd(100) -> error %v, want ErrNoMatchingCmd", err)
	}

	// DelCmd
	if err := store.DelCmd(1); err != nil {
		t.Errorf("store.DelCmd(1) -> error %v", err)
	}
	if cmd, err := store.Cmd(1); err != storedefs.ErrNoMatchingCmd {
		t.Errorf("store.Cmd(1) -> (%v, %v), want (\"\", ErrNoMatchingCmd)", cmd, err)
	}
	if got, _ := store.LastCmds(10); len(got) != len(cmds)-1 {
		t.Errorf("store.LastCmds(10) after DelCmd returned %d entries", len(got))
	}
}
