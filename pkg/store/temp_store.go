package store

import (
	"path/filepath"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/testutil"
)

// MustTempStore returns a Store backed by a temporary file. The Store and the
// file are removed when the test finishes.
func MustTempStore(c testutil.Cleanuper) DBStore {
	dir := testutil.TempDir(c)
	st, err := NewStore(filepath.Join(dir, "history.db"))
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() { st.Close() })
	return st
}
