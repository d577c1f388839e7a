// Package read converts parse trees into values.
package read

import (
	"strconv"
	"strings"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/logutil"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/parse"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/vals"
)

var logger = logutil.GetLogger("[read] ")

// Node converts a parse node into a value. Literals that cannot be converted
// and nodes of unknown tags become error values; Node never fails otherwise.
//
// The root node and group nodes become groups of their expression children;
// brackets and anchors are skipped.
func Node(n *parse.Node) vals.Value {
	switch {
	case strings.Contains(n.Tag, "decimal"):
		f, err := strconv.ParseFloat(n.Contents, 64)
		if err != nil {
			logger.Printf("bad decimal %q: %v", n.Contents, err)
			return vals.Err(vals.BadNumber)
		}
		return vals.Decimal(f)
	case strings.Contains(n.Tag, "number"):
		i, err := strconv.ParseInt(n.Contents, 10, 64)
		if err != nil {
			logger.Printf("bad number %q: %v", n.Contents, err)
			return vals.Err(vals.BadNumber)
		}
		return vals.Number(i)
	case strings.Contains(n.Tag, "symbol"):
		return vals.Symbol(n.Contents)
	case n.Tag == parse.TagRoot || strings.Contains(n.Tag, "sexpr"):
		g := vals.NewGroup()
		for _, ch := range n.Children {
			if isPunctuation(ch) {
				continue
			}
			g.Append(Node(ch))
		}
		return g
	default:
		return vals.Errorf(vals.BadNode, "unexpected node %s", n.Tag)
	}
}

func isPunctuation(n *parse.Node) bool {
	switch n.Contents {
	case "(", ")", "{", "}":
		return true
	}
	return n.Tag == parse.TagAnchor
}

// Source parses src and converts the tree into a value. The root always
// becomes a group holding one element per top-level expression. If there are
// parse errors, the returned error contains them, and the value holds what
// could be parsed.
func Source(src parse.Source) (vals.Value, error) {
	tree, err := parse.Parse(src)
	return Node(tree.Root), err
}
