// Package parse implements the lispy parser.
//
// The parser builds a tree of tagged nodes. Each node has a tag classifying
// it, the literal text it covers (only for leaf nodes), an ordered list of
// children and the range of source text it spans. The tags follow the naming
// of a parser combinator grammar, where a rule that consists of a single
// alternative is collapsed into its parent and the tag records the whole
// chain:
//
//	>                   the root: /^/ expr* /$/
//	regex               the two anchors of the root, with empty contents
//	char                a bracket of a group, with contents "(" or ")"
//	expr|number|regex   an integer literal, -?[0-9]+
//	expr|decimal|regex  a decimal literal, -?[0-9]+\.[0-9]+
//	expr|symbol|char    one of + - * / %
//	expr|sexpr|>        a group, '(' expr* ')'
//
// Consumers are expected to classify nodes by looking for substrings like
// "number" or "sexpr" in the tag.
package parse

import (
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/diag"
)

// Tags of nodes built by the parser.
const (
	TagRoot    = ">"
	TagAnchor  = "regex"
	TagChar    = "char"
	TagNumber  = "expr|number|regex"
	TagDecimal = "expr|decimal|regex"
	TagSymbol  = "expr|symbol|char"
	TagSexpr   = "expr|sexpr|>"
)

// Source describes a piece of source code.
type Source struct {
	Name   string
	Code   string
	IsFile bool
}

// Tree represents a parsed tree.
type Tree struct {
	Root   *Node
	Source Source
}

// Node is a node in the parse tree.
type Node struct {
	Tag      string
	Contents string
	Children []*Node
	diag.Ranging
}

// Parse parses the given source. The returned error contains one or more
// [*Error] values if it is not nil; use [UnpackErrors] to get them. Even when
// there are errors, the returned tree contains all the nodes that could be
// parsed.
func Parse(src Source) (Tree, error) {
	ps := &parser{srcName: src.Name, src: src.Code}
	root := ps.parseRoot()
	return Tree{root, src}, diag.PackErrors(ps.errors)
}

var errShouldBeRParen = newError("", "')'")

func (ps *parser) parseRoot() *Node {
	root := &Node{Tag: TagRoot}
	root.addChild(&Node{Tag: TagAnchor})
	for {
		ps.skipSpaces()
		r := ps.peek()
		if r == eof {
			break
		}
		if !startsExpr(r) {
			ps.errorUnexpected(r)
			ps.next()
			continue
		}
		root.addChild(ps.parseExpr())
	}
	root.addChild(&Node{Tag: TagAnchor, Ranging: diag.PointRanging(ps.pos)})
	root.To = ps.pos
	return root
}

func startsExpr(r rune) bool {
	return isDigit(r) || isSymbol(r) || r == '('
}

func (ps *parser) parseExpr() *Node {
	r := ps.peek()
	switch {
	case r == '(':
		return ps.parseSexpr()
	case isDigit(r), r == '-' && isDigit(ps.peekAt(1)):
		return ps.parseNumber()
	default:
		begin := ps.pos
		ps.next()
		return ps.leaf(TagSymbol, begin)
	}
}

// Number = '-'? digit+ ( '.' digit+ )?
//
// Without the fraction part, the literal is tagged as a number; with it, it
// is tagged as a decimal.
func (ps *parser) parseNumber() *Node {
	begin := ps.pos
	if ps.peek() == '-' {
		ps.next()
	}
	ps.skipDigits()
	if ps.peek() == '.' && isDigit(ps.peekAt(1)) {
		ps.next()
		ps.skipDigits()
		return ps.leaf(TagDecimal, begin)
	}
	return ps.leaf(TagNumber, begin)
}

// Sexpr = '(' { Space } { Expr { Space } } ')'
func (ps *parser) parseSexpr() *Node {
	n := &Node{Tag: TagSexpr, Ranging: diag.PointRanging(ps.pos)}
	n.addChild(ps.parseChar())
	for {
		ps.skipSpaces()
		r := ps.peek()
		switch {
		case r == ')':
			n.addChild(ps.parseChar())
			n.To = ps.pos
			return n
		case r == eof:
			ps.error(errShouldBeRParen)
			n.To = ps.pos
			return n
		case startsExpr(r):
			n.addChild(ps.parseExpr())
		default:
			ps.errorUnexpected(r)
			ps.next()
		}
	}
}

func (ps *parser) parseChar() *Node {
	begin := ps.pos
	ps.next()
	return ps.leaf(TagChar, begin)
}

func (ps *parser) leaf(tag string, begin int) *Node {
	return &Node{
		Tag: tag, Contents: ps.src[begin:ps.pos],
		Ranging: diag.Ranging{From: begin, To: ps.pos}}
}

func (ps *parser) skipDigits() {
	for isDigit(ps.peek()) {
		ps.next()
	}
}

func (ps *parser) skipSpaces() {
	for IsWhitespace(ps.peek()) {
		ps.next()
	}
}

func (n *Node) addChild(ch *Node) {
	n.Children = append(n.Children, ch)
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Walk calls f for n and each of its descendants, parents before children and
// siblings from left to right. If f returns false, the children of that node
// are skipped.
func Walk(n *Node, f func(*Node) bool) {
	if !f(n) {
		return
	}
	for _, ch := range n.Children {
		Walk(ch, f)
	}
}

// FindPath returns the chain of expression nodes that contain the given
// position, from the outermost to the innermost. Brackets and anchors are not
// included; neither is the root.
func FindPath(root *Node, pos int) []*Node {
	var path []*Node
	n := root
descend:
	for {
		for _, ch := range n.Children {
			if ch.Tag == TagAnchor || ch.Tag == TagChar || !ch.Contains(pos) {
				continue
			}
			path = append(path, ch)
			n = ch
			continue descend
		}
		return path
	}
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isSymbol(r rune) bool {
	return r == '+' || r == '-' || r == '*' || r == '/' || r == '%'
}

// IsWhitespace reports whether r separates tokens: space, tab, carriage return
// or newline.
func IsWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
