// Package storedefs declares the interface of the history store, apart from
// its bbolt-backed implementation.
package storedefs

import "errors"

// ErrNoMatchingCmd is returned when no history entry has the requested
// sequence number.
var ErrNoMatchingCmd = errors.New("no matching command line")

// Store keeps the lines entered in the interactive mode. Sequence numbers
// start at 1 and are never reused.
type Store interface {
	NextCmdSeq() (int, error)
	AddCmd(text string) (int, error)
	DelCmd(seq int) error
	Cmd(seq int) (string, error)
	// CmdsWithSeq returns the entries with from <= seq < upto.
	CmdsWithSeq(from, upto int) ([]Cmd, error)
	// LastCmds returns up to n of the newest entries, oldest first.
	LastCmds(n int) ([]Cmd, error)
}

// Cmd is one history entry.
type Cmd struct {
	Text string
	Seq  int
}
