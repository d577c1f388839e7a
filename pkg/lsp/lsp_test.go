package lsp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/prog/progtest"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/testutil"
	"github.com/google/go-cmp/cmp"
	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"
)

var Test = progtest.Test
var ThatLispy = progtest.ThatLispy

func frame(id int, method string, params any) string {
	msg := map[string]any{"jsonrpc": "2.0", "method": method}
	if id > 0 {
		msg["id"] = id
	}
	if params != nil {
		msg["params"] = params
	}
	body, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(body), body)
}

func TestProgram(t *testing.T) {
	Test(t, Program{},
		ThatLispy("-lsp").
			WithStdin(frame(1, "initialize", map[string]any{})+frame(0, "exit", nil)).
			WritesStdoutContaining(`"hoverProvider":true`),
		ThatLispy("-lsp").WithStdin("").DoesNothing(),
	)
}

func TestProgram_NotSuitable(t *testing.T) {
	Test(t, Program{},
		ThatLispy().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

const testURI = lsp.DocumentURI("file:///foo.lispy")

type client struct {
	conn  *jsonrpc2.Conn
	diags chan lsp.PublishDiagnosticsParams
}

func setup(t *testing.T) *client {
	t.Helper()
	ctx := context.Background()
	serverEnd, clientEnd := net.Pipe()
	serverConn := jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(serverEnd, jsonrpc2.VSCodeObjectCodec{}),
		handler(newServer()))
	c := &client{diags: make(chan lsp.PublishDiagnosticsParams, 10)}
	c.conn = jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(clientEnd, jsonrpc2.VSCodeObjectCodec{}),
		jsonrpc2.HandlerWithError(c.handle))
	t.Cleanup(func() {
		c.conn.Close()
		serverConn.Close()
	})
	return c
}

func (c *client) handle(_ context.Context, _ *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
	if req.Method == "textDocument/publishDiagnostics" && req.Params != nil {
		var params lsp.PublishDiagnosticsParams
		if err := json.Unmarshal(*req.Params, &params); err == nil {
			c.diags <- params
		}
	}
	return nil, nil
}

func (c *client) call(t *testing.T, method string, params, result any) {
	t.Helper()
	err := c.conn.Call(context.Background(), method, params, result)
	if err != nil {
		t.Fatalf("%s: %v", method, err)
	}
}

func (c *client) open(t *testing.T, text string) {
	t.Helper()
	c.call(t, "textDocument/didOpen", lsp.DidOpenTextDocumentParams{
		TextDocument: lsp.TextDocumentItem{URI: testURI, Text: text}}, nil)
}

func (c *client) nextDiags(t *testing.T) []lsp.Diagnostic {
	t.Helper()
	select {
	case params := <-c.diags:
		if params.URI != testURI {
			t.Errorf("diagnostics for %q, want %q", params.URI, testURI)
		}
		return params.Diagnostics
	case <-time.After(testutil.Scaled(time.Second)):
		t.Fatal("timed out waiting for diagnostics")
		return nil
	}
}

func lspRange(l1, c1, l2, c2 int) lsp.Range {
	return lsp.Range{
		Start: lsp.Position{Line: l1, Character: c1},
		End:   lsp.Position{Line: l2, Character: c2},
	}
}

func TestInitialize(t *testing.T) {
	c := setup(t)
	var result lsp.InitializeResult
	c.call(t, "initialize", lsp.InitializeParams{}, &result)
	if !result.Capabilities.HoverProvider {
		t.Errorf("hover is not advertised")
	}
	sync := result.Capabilities.TextDocumentSync
	if sync == nil || sync.Options == nil || sync.Options.Change != lsp.TDSKFull {
		t.Errorf("full document sync is not advertised: %+v", sync)
	}
}

func TestDiagnostics_ParseError(t *testing.T) {
	c := setup(t)
	c.open(t, "(+ 1 2)\n(* 3 x)")

	diags := c.nextDiags(t)
	if len(diags) == 0 {
		t.Fatal("got no diagnostics")
	}
	d := diags[0]
	if d.Severity != lsp.Error || d.Source != "parse" {
		t.Errorf("got severity %v source %q, want error from parse", d.Severity, d.Source)
	}
	if d.Range.Start.Line != 1 {
		t.Errorf("error reported on line %d, want 1", d.Range.Start.Line)
	}
}

func TestDiagnostics_EvalWarnings(t *testing.T) {
	c := setup(t)
	c.open(t, "(+ 1 2)\n(/ 1 0)\n(% 1.5 2) 3")

	want := []lsp.Diagnostic{
		{Range: lspRange(1, 0, 1, 7), Severity: lsp.Warning, Source: "eval",
			Message: "Division by zero"},
		{Range: lspRange(2, 0, 2, 11), Severity: lsp.Warning, Source: "eval",
			Message: "Module operation requires integer numbers"},
	}
	if diff := cmp.Diff(want, c.nextDiags(t)); diff != "" {
		t.Errorf("diagnostics (-want +got):\n%s", diff)
	}
}

func TestDiagnostics_ClearedOnChange(t *testing.T) {
	c := setup(t)
	c.open(t, "(/ 1 0)")
	if diags := c.nextDiags(t); len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}

	c.call(t, "textDocument/didChange", lsp.DidChangeTextDocumentParams{
		TextDocument: lsp.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: lsp.TextDocumentIdentifier{URI: testURI}},
		ContentChanges: []lsp.TextDocumentContentChangeEvent{{Text: "(/ 1 2)"}},
	}, nil)
	if diags := c.nextDiags(t); len(diags) != 0 {
		t.Errorf("got diagnostics after fix: %v", diags)
	}
}

func TestHover(t *testing.T) {
	c := setup(t)
	c.open(t, "(+ 1 (* 2 3.5))\n(/ 1 0)")
	c.nextDiags(t)

	tests := []struct {
		pos       lsp.Position
		wantText  string
		wantRange lsp.Range
	}{
		{lsp.Position{Line: 0, Character: 0}, "decimal: 8.0", lspRange(0, 0, 0, 15)},
		{lsp.Position{Line: 0, Character: 1}, "symbol: +", lspRange(0, 1, 0, 2)},
		{lsp.Position{Line: 0, Character: 5}, "decimal: 7.0", lspRange(0, 5, 0, 14)},
		{lsp.Position{Line: 0, Character: 8}, "number: 2", lspRange(0, 8, 0, 9)},
		{lsp.Position{Line: 1, Character: 0}, "error: Division by zero", lspRange(1, 0, 1, 7)},
	}
	for _, test := range tests {
		var result struct {
			Contents []string
			Range    lsp.Range
		}
		c.call(t, "textDocument/hover", lsp.TextDocumentPositionParams{
			TextDocument: lsp.TextDocumentIdentifier{URI: testURI},
			Position:     test.pos,
		}, &result)
		if len(result.Contents) != 1 || result.Contents[0] != test.wantText {
			t.Errorf("hover at %v shows %q, want %q", test.pos, result.Contents, test.wantText)
		}
		if result.Range != test.wantRange {
			t.Errorf("hover at %v has range %v, want %v", test.pos, result.Range, test.wantRange)
		}
	}
}

func TestHover_NoDocumentOrNode(t *testing.T) {
	c := setup(t)
	hover := func(uri lsp.DocumentURI, pos lsp.Position) json.RawMessage {
		var result json.RawMessage
		c.call(t, "textDocument/hover", lsp.TextDocumentPositionParams{
			TextDocument: lsp.TextDocumentIdentifier{URI: uri},
			Position:     pos,
		}, &result)
		return result
	}

	if got := hover(testURI, lsp.Position{}); string(got) != "null" {
		t.Errorf("hover in unknown document returned %s", got)
	}
	c.open(t, "1\n\n2")
	c.nextDiags(t)
	if got := hover(testURI, lsp.Position{Line: 1}); string(got) != "null" {
		t.Errorf("hover on a blank line returned %s", got)
	}
	c.call(t, "textDocument/didClose", lsp.DidCloseTextDocumentParams{
		TextDocument: lsp.TextDocumentIdentifier{URI: testURI}}, nil)
	if got := hover(testURI, lsp.Position{}); string(got) != "null" {
		t.Errorf("hover in closed document returned %s", got)
	}
}

func TestErrors(t *testing.T) {
	c := setup(t)
	ctx := context.Background()

	tests := []struct {
		method string
		params any
		code   int64
	}{
		{"textDocument/definition", nil, jsonrpc2.CodeMethodNotFound},
		{"textDocument/didOpen", []int{1}, jsonrpc2.CodeInvalidParams},
		{"textDocument/didChange", lsp.DidChangeTextDocumentParams{}, jsonrpc2.CodeInvalidParams},
		{"textDocument/hover", "foo", jsonrpc2.CodeInvalidParams},
	}
	for _, test := range tests {
		err := c.conn.Call(ctx, test.method, test.params, nil)
		var rpcErr *jsonrpc2.Error
		if !errors.As(err, &rpcErr) || rpcErr.Code != test.code {
			t.Errorf("%s returned %v, want code %d", test.method, err, test.code)
		}
	}
	c.call(t, "shutdown", nil, nil)
}

var walkStringTests = []struct {
	s   string
	idx int
	pos lsp.Position
}{
	{"ab", 1, lsp.Position{Line: 0, Character: 1}},
	{"a\nb", 2, lsp.Position{Line: 1, Character: 0}},
	{"a\r\nb", 2, lsp.Position{Line: 1, Character: 0}},
	{"a\rb", 2, lsp.Position{Line: 1, Character: 0}},
	// U+1F600 takes 4 bytes in UTF-8 and 2 code units in UTF-16.
	{"\U0001F600x", 4, lsp.Position{Line: 0, Character: 2}},
	{"é1", 2, lsp.Position{Line: 0, Character: 1}},
	{"ab", 2, lsp.Position{Line: 0, Character: 2}},
}

func TestLSPPositionConversion(t *testing.T) {
	for _, test := range walkStringTests {
		if got := lspPositionFromIdx(test.s, test.idx); got != test.pos {
			t.Errorf("lspPositionFromIdx(%q, %d) = %v, want %v", test.s, test.idx, got, test.pos)
		}
		if got := lspPositionToIdx(test.s, test.pos); got != test.idx {
			t.Errorf("lspPositionToIdx(%q, %v) = %d, want %d", test.s, test.pos, got, test.idx)
		}
	}
}

func TestDiagnosticsFunc_NeverNil(t *testing.T) {
	if diags := diagnostics(testURI, ""); diags == nil {
		t.Errorf("diagnostics of an empty document is nil, want empty slice")
	}
	d := diagnostics(testURI, "(")
	if len(d) == 0 || d[0].Source != "parse" {
		t.Errorf("unexpected diagnostics for unclosed paren: %v", d)
	}
}
