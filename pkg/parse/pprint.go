package parse

import (
	"fmt"
	"io"
)

const indentInc = 2

// PprintAST pretty-prints the tree rooted at n, one node per line and indented
// by depth. Leaf nodes are followed by the range and the text they cover.
func PprintAST(n *Node, w io.Writer) {
	pprintASTRec(n, w, 0)
}

func pprintASTRec(n *Node, w io.Writer, indent int) {
	fmt.Fprintf(w, "%*s%s", indent, "", n.Tag)
	if n.IsLeaf() {
		fmt.Fprintf(w, " %d-%d %q", n.From, n.To, n.Contents)
	}
	fmt.Fprintln(w)
	for _, ch := range n.Children {
		pprintASTRec(ch, w, indent+indentInc)
	}
}
