package diag

import (
	"strings"
	"testing"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/testutil"
)

var contextShowTests = []struct {
	name    string
	context *Context
	indent  string
	want    string
}{
	{
		name:    "single-line culprit",
		context: contextInParen("[test]", "+ 1 (bad)"),
		indent:  "_",
		want:    "[test]:1:5: + 1 <(bad)>",
	},
	{
		name:    "multi-line culprit",
		context: contextInParen("[test]", "+ (1\n2)\n3"),
		indent:  "_",
		want: "[test]:1:3: + <(1>\n" +
			"_" + strings.Repeat(" ", len("[test]:1:3: ")) + "<2)>",
	},
	{
		name: "trailing newline in culprit is removed",
		//                             0123456 7
		context: NewContext("[test]", "+ 1 2\n", Ranging{4, 6}),
		want:    "[test]:1:5: + 1 <2>",
	},
	{
		name:    "culprit on a later line",
		context: NewContext("[test]", "(+ 1\n   2 x)", Ranging{10, 11}),
		want:    "[test]:2:6:    2 <x>)",
	},
	{
		name: "empty culprit",
		//                             012345
		context: NewContext("[test]", "(+ 1 ", Ranging{5, 5}),
		want:    "[test]:1:6: (+ 1 <^>",
	},
	{
		name:    "unknown culprit range",
		context: NewContext("[test]", "(+)", Ranging{-1, -1}),
		want:    "[test], unknown position",
	},
	{
		name:    "invalid culprit range",
		context: NewContext("[test]", "(+)", Ranging{2, 1}),
		want:    "[test], invalid position 2-1",
	},
}

func TestContext_Show(t *testing.T) {
	setCulpritMarkers(t, "<", ">")
	for _, test := range contextShowTests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.context.Show(test.indent); got != test.want {
				t.Errorf("Show() -> %q, want %q", got, test.want)
			}
		})
	}
}

func TestRanging(t *testing.T) {
	r := Ranging{1, 3}
	for p, want := range map[int]bool{0: false, 1: true, 3: true, 4: false} {
		if got := r.Contains(p); got != want {
			t.Errorf("%v.Contains(%d) = %v, want %v", r, p, got, want)
		}
	}
	if got := PointRanging(4); got != (Ranging{4, 4}) {
		t.Errorf("PointRanging(4) -> %v, want {4 4}", got)
	}
}

// Returns a Context with the given name and source, and a range for the part
// between ( and ).
func contextInParen(name, src string) *Context {
	return NewContext(name, src,
		Ranging{strings.Index(src, "("), strings.Index(src, ")") + 1})
}

func setCulpritMarkers(t *testing.T, start, end string) {
	testutil.Set(t, &culpritStart, start)
	testutil.Set(t, &culpritEnd, end)
}

func setMessageMarkers(t *testing.T, start, end string) {
	testutil.Set(t, &messageStart, start)
	testutil.Set(t, &messageEnd, end)
}
