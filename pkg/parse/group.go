package parse

import "strings"

// GroupByLine splits the top-level expressions of a tree into groups that
// would be entered as one line in the interactive mode: an expression joins
// the group of the previous one if it starts on the line where the previous
// one ends. Each group is returned as a root node without anchors.
func GroupByLine(code string, root *Node) []*Node {
	var groups []*Node
	var current *Node
	lastLine := -1
	for _, ch := range root.Children {
		if ch.Tag == TagAnchor {
			continue
		}
		startLine := strings.Count(code[:ch.From], "\n")
		if current == nil || startLine != lastLine {
			current = &Node{Tag: TagRoot, Ranging: ch.Ranging}
			groups = append(groups, current)
		}
		current.addChild(ch)
		current.To = ch.To
		lastLine = strings.Count(code[:ch.To], "\n")
	}
	return groups
}
