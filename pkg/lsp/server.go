package lsp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"unicode/utf16"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/diag"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/eval"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/logutil"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/parse"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/read"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/vals"
	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"
)

var logger = logutil.GetLogger("[lsp] ")

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

type server struct {
	mu      sync.Mutex
	content map[lsp.DocumentURI]string
}

func newServer() *server {
	return &server{content: make(map[lsp.DocumentURI]string)}
}

type method func(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (any, error)

func handler(s *server) jsonrpc2.Handler {
	return routingHandler(map[string]method{
		"initialize":                       s.initialize,
		"initialized":                      noop,
		"shutdown":                         noop,
		"exit":                             s.exit,
		"textDocument/didOpen":             s.didOpen,
		"textDocument/didChange":           s.didChange,
		"textDocument/didClose":            s.didClose,
		"textDocument/hover":               s.hover,
		"workspace/didChangeWatchedFiles":  noop,
		"workspace/didChangeConfiguration": noop,
	})
}

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		fn, ok := methods[req.Method]
		if !ok {
			logger.Println("unknown method", req.Method)
			return nil, errMethodNotFound
		}
		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		return fn(ctx, conn, params)
	})
}

func noop(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return nil, nil
}

func (s *server) initialize(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return &lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptionsOrKind{
				Options: &lsp.TextDocumentSyncOptions{
					OpenClose: true,
					Change:    lsp.TDSKFull,
				},
			},
			HoverProvider: true,
		},
	}, nil
}

func (s *server) exit(_ context.Context, conn jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return nil, conn.Close()
}

func (s *server) didOpen(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidOpenTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	uri, content := params.TextDocument.URI, params.TextDocument.Text
	s.setContent(uri, content)
	go publishDiagnostics(ctx, conn, uri, content)
	return nil, nil
}

func (s *server) didChange(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidChangeTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil || len(params.ContentChanges) == 0 {
		return nil, errInvalidParams
	}
	// Only full sync is advertised, so the last change has the whole text.
	uri := params.TextDocument.URI
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.setContent(uri, content)
	go publishDiagnostics(ctx, conn, uri, content)
	return nil, nil
}

func (s *server) didClose(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidCloseTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	s.mu.Lock()
	delete(s.content, params.TextDocument.URI)
	s.mu.Unlock()
	return nil, nil
}

func (s *server) hover(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.TextDocumentPositionParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	s.mu.Lock()
	content, ok := s.content[params.TextDocument.URI]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	tree, _ := parse.Parse(parse.Source{Name: string(params.TextDocument.URI), Code: content})
	path := parse.FindPath(tree.Root, lspPositionToIdx(content, params.Position))
	if len(path) == 0 {
		return nil, nil
	}
	n := path[len(path)-1]
	v := eval.Eval(read.Node(n))
	r := lspRangeFromRange(content, n)
	return &lsp.Hover{
		Contents: []lsp.MarkedString{
			lsp.RawMarkedString(fmt.Sprintf("%s: %s", vals.Kind(v), vals.ToString(v))),
		},
		Range: &r,
	}, nil
}

func (s *server) setContent(uri lsp.DocumentURI, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content[uri] = content
}

func publishDiagnostics(ctx context.Context, conn jsonrpc2.JSONRPC2, uri lsp.DocumentURI, content string) {
	err := conn.Notify(ctx, "textDocument/publishDiagnostics",
		lsp.PublishDiagnosticsParams{URI: uri, Diagnostics: diagnostics(uri, content)})
	if err != nil {
		logger.Println("publishing diagnostics:", err)
	}
}

// Parse errors are reported as errors. When the document parses cleanly,
// each line group is evaluated and error values are reported as warnings.
func diagnostics(uri lsp.DocumentURI, content string) []lsp.Diagnostic {
	tree, err := parse.Parse(parse.Source{Name: string(uri), Code: content})

	diags := []lsp.Diagnostic{}
	if err != nil {
		for _, e := range parse.UnpackErrors(err) {
			diags = append(diags, lsp.Diagnostic{
				Range:    lspRangeFromRange(content, e),
				Severity: lsp.Error,
				Source:   "parse",
				Message:  e.Message,
			})
		}
		return diags
	}
	for _, group := range parse.GroupByLine(content, tree.Root) {
		if e, ok := eval.Eval(read.Node(group)).(*vals.Error); ok {
			diags = append(diags, lsp.Diagnostic{
				Range:    lspRangeFromRange(content, group),
				Severity: lsp.Warning,
				Source:   "eval",
				Message:  e.Message,
			})
		}
	}
	return diags
}

func lspRangeFromRange(s string, r diag.Ranger) lsp.Range {
	rg := r.Range()
	return lsp.Range{
		Start: lspPositionFromIdx(s, rg.From),
		End:   lspPositionFromIdx(s, rg.To),
	}
}

func lspPositionToIdx(s string, pos lsp.Position) int {
	var idx int
	walkString(s, func(i int, p lsp.Position) bool {
		idx = i
		return p.Line < pos.Line || (p.Line == pos.Line && p.Character < pos.Character)
	})
	return idx
}

func lspPositionFromIdx(s string, idx int) lsp.Position {
	var pos lsp.Position
	walkString(s, func(i int, p lsp.Position) bool {
		pos = p
		return i < idx
	})
	return pos
}

// Calls f with each rune index of s and its LSP position, then once more
// with len(s). LSP characters count UTF-16 code units.
func walkString(s string, f func(i int, p lsp.Position) bool) {
	var p lsp.Position
	lastCR := false

	for i, r := range s {
		if !f(i, p) {
			return
		}
		switch {
		case r == '\n' && lastCR:
			// Second half of \r\n.
		case r == '\r', r == '\n':
			p.Line++
			p.Character = 0
		case r <= 0xFFFF:
			p.Character++
		default:
			// Encoded in UTF-16 with a surrogate pair.
			p.Character += len(utf16.Encode([]rune{r}))
		}
		lastCR = r == '\r'
	}
	f(len(s), p)
}
