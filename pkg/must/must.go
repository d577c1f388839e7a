// Package must wraps fallible calls so that an error becomes a panic. Tests
// use it for setup steps that are not themselves under test.
package must

import (
	"os"
	"path/filepath"
)

// OK panics with err unless it is nil.
func OK(err error) {
	if err != nil {
		panic(err)
	}
}

// OK1 returns v, or panics if err is not nil.
func OK1[T any](v T, err error) T {
	OK(err)
	return v
}

// Pipe returns the two ends of a new pipe.
func Pipe() (r, w *os.File) {
	r, w, err := os.Pipe()
	OK(err)
	return r, w
}

// Chdir changes the working directory.
func Chdir(dir string) { OK(os.Chdir(dir)) }

// MkdirAll creates each named directory along with its parents.
func MkdirAll(dirs ...string) {
	for _, dir := range dirs {
		OK(os.MkdirAll(dir, 0700))
	}
}

// WriteFile writes content to name, creating the parent directory first.
func WriteFile(name, content string) {
	MkdirAll(filepath.Dir(name))
	OK(os.WriteFile(name, []byte(content), 0600))
}

// ReadFileString returns the content of name as a string.
func ReadFileString(name string) string {
	return string(OK1(os.ReadFile(name)))
}
