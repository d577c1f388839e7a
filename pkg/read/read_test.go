package read

import (
	"math"
	"strconv"
	"testing"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/parse"
	. "github.com/ThomasBollmeier/build-your-own-lisp/pkg/tt"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/vals"
	"github.com/google/go-cmp/cmp"
)

func readCode(code string) vals.Value {
	v, _ := Source(parse.Source{Name: "[test]", Code: code})
	return v
}

var (
	g   = vals.NewGroup
	sym = func(s string) vals.Value { return vals.Symbol(s) }
)

func TestSource(t *testing.T) {
	Test(t, Fn(readCode).Named("read"),
		Args("").Rets(g()),
		Args("42").Rets(g(vals.Number(42))),
		Args("-7").Rets(g(vals.Number(-7))),
		Args("2.5").Rets(g(vals.Decimal(2.5))),
		Args("-0.125").Rets(g(vals.Decimal(-0.125))),
		Args("+ 1 2").Rets(g(sym("+"), vals.Number(1), vals.Number(2))),
		Args("()").Rets(g(g())),
		Args("(+ 1 2.5)").Rets(
			g(g(sym("+"), vals.Number(1), vals.Decimal(2.5)))),
		Args("(* (+ 1 2) (- 4 1))").Rets(
			g(g(sym("*"),
				g(sym("+"), vals.Number(1), vals.Number(2)),
				g(sym("-"), vals.Number(4), vals.Number(1))))),
		It("converts out-of-range integers to errors").
			Args("(+ 1 99999999999999999999)").Rets(
			g(g(sym("+"), vals.Number(1), vals.Err(vals.BadNumber)))),
	)
}

func TestSource_ReturnsParseError(t *testing.T) {
	v, err := Source(parse.Source{Name: "[test]", Code: "(+ 1"})
	if !parse.IsPartial(err) {
		t.Errorf("got error %v, want partial parse error", err)
	}
	want := g(g(sym("+"), vals.Number(1)))
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("value (-want +got):\n%s", diff)
	}
}

func TestNode_IntegerLiteralsRoundTrip(t *testing.T) {
	for _, i := range []int64{0, 1, -1, 1234567890, math.MaxInt64, math.MinInt64} {
		s := strconv.FormatInt(i, 10)
		v := Node(&parse.Node{Tag: parse.TagNumber, Contents: s})
		if v != vals.Number(i) {
			t.Errorf("Node(%q) = %v, want %d", s, v, i)
		}
		if got := vals.ToString(v); got != s {
			t.Errorf("ToString(Node(%q)) = %q", s, got)
		}
	}
}

func TestNode(t *testing.T) {
	Test(t, Node,
		It("rejects malformed decimals").
			Args(&parse.Node{Tag: parse.TagDecimal, Contents: "1.2.3"}).
			Rets(vals.Err(vals.BadNumber)),
		It("rejects malformed numbers").
			Args(&parse.Node{Tag: parse.TagNumber, Contents: "12a"}).
			Rets(vals.Err(vals.BadNumber)),
		It("classifies by tag substring").
			Args(&parse.Node{Tag: "number|regex", Contents: "5"}).
			Rets(vals.Number(5)),
		It("skips alternate brackets").
			Args(&parse.Node{Tag: parse.TagSexpr, Children: []*parse.Node{
				{Tag: parse.TagChar, Contents: "{"},
				{Tag: parse.TagNumber, Contents: "1"},
				{Tag: parse.TagChar, Contents: "}"},
			}}).
			Rets(g(vals.Number(1))),
		It("turns unknown nodes into errors").
			Args(&parse.Node{Tag: "qexpr", Contents: "x"}).
			Rets(vals.NewError(vals.BadNode, "unexpected node qexpr")),
	)
}
