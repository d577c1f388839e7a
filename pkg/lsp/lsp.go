// Package lsp implements a language server for lispy source files.
package lsp

import (
	"context"
	"errors"
	"os"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/prog"
	"github.com/sourcegraph/jsonrpc2"
)

// Program is the LSP subprogram.
type Program struct{}

// Run starts the language server on stdin and stdout if the -lsp flag is
// given. It returns when the client disconnects or sends "exit".
func (Program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	if !f.LSP {
		return prog.ErrNotSuitable
	}
	logger.Println("starting language server")
	conn := jsonrpc2.NewConn(context.Background(),
		jsonrpc2.NewBufferedStream(transport{fds[0], fds[1]}, jsonrpc2.VSCodeObjectCodec{}),
		handler(newServer()))
	<-conn.DisconnectNotify()
	logger.Println("client disconnected")
	return nil
}

// Joins stdin and stdout into the io.ReadWriteCloser that jsonrpc2 streams
// over.
type transport struct {
	*os.File
	out *os.File
}

func (t transport) Write(p []byte) (int, error) { return t.out.Write(p) }

func (t transport) Close() error { return errors.Join(t.File.Close(), t.out.Close()) }
