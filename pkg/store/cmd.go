package store

import (
	"encoding/binary"

	. "github.com/ThomasBollmeier/build-your-own-lisp/pkg/store/storedefs"
	bolt "go.etcd.io/bbolt"
)

// Keys of the history bucket are big-endian sequence numbers, so that the
// bbolt cursor visits entries in the order they were added.

func cmdBucket(tx *bolt.Tx) *bolt.Bucket { return tx.Bucket([]byte(bucketCmd)) }

func seqKey(seq int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(seq))
	return key
}

func keySeq(key []byte) int { return int(binary.BigEndian.Uint64(key)) }

func (s *dbStore) NextCmdSeq() (int, error) {
	var next int
	err := s.db.View(func(tx *bolt.Tx) error {
		next = int(cmdBucket(tx).Sequence()) + 1
		return nil
	})
	return next, err
}

// AddCmd appends a line to the history and returns its sequence number.
func (s *dbStore) AddCmd(text string) (int, error) {
	var seq int
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := cmdBucket(tx)
		next, err := b.NextSequence()
		if err != nil {
			return err
		}
		seq = int(next)
		return b.Put(seqKey(seq), []byte(text))
	})
	if err != nil {
		return 0, err
	}
	logger.Printf("added history entry %d", seq)
	return seq, nil
}

func (s *dbStore) DelCmd(seq int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return cmdBucket(tx).Delete(seqKey(seq))
	})
}

func (s *dbStore) Cmd(seq int) (string, error) {
	var text string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := cmdBucket(tx).Get(seqKey(seq))
		if v == nil {
			return ErrNoMatchingCmd
		}
		text = string(v)
		return nil
	})
	return text, err
}

func (s *dbStore) CmdsWithSeq(from, upto int) ([]Cmd, error) {
	var cmds []Cmd
	err := s.db.View(func(tx *bolt.Tx) error {
		c := cmdBucket(tx).Cursor()
		for k, v := c.Seek(seqKey(from)); k != nil && keySeq(k) < upto; k, v = c.Next() {
			cmds = append(cmds, Cmd{Text: string(v), Seq: keySeq(k)})
		}
		return nil
	})
	return cmds, err
}

func (s *dbStore) LastCmds(n int) ([]Cmd, error) {
	if n <= 0 {
		return nil, nil
	}
	// Walk backwards, filling the slice from its end.
	var cmds []Cmd
	err := s.db.View(func(tx *bolt.Tx) error {
		b := cmdBucket(tx)
		if count := b.Stats().KeyN; count < n {
			n = count
		}
		cmds = make([]Cmd, n)
		c := b.Cursor()
		i := n - 1
		for k, v := c.Last(); k != nil && i >= 0; k, v = c.Prev() {
			cmds[i] = Cmd{Text: string(v), Seq: keySeq(k)}
			i--
		}
		return nil
	})
	return cmds, err
}
