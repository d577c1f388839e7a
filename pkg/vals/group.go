package vals

import "fmt"

// Group is an ordered sequence of values, written as a parenthesized
// expression. The zero value is an empty group ready to use.
type Group struct {
	items []Value
}

// NewGroup returns a group holding the given items, which it takes ownership
// of.
func NewGroup(items ...Value) *Group {
	return &Group{items: items}
}

// Append adds v as the last element and returns the group.
func (g *Group) Append(v Value) *Group {
	g.items = append(g.items, v)
	return g
}

// Len returns the number of elements.
func (g *Group) Len() int { return len(g.items) }

// At returns the i-th element.
func (g *Group) At(i int) Value { return g.items[g.checkIndex(i)] }

// Set replaces the i-th element.
func (g *Group) Set(i int, v Value) { g.items[g.checkIndex(i)] = v }

// RemoveAt removes the i-th element and returns it. Later elements move down
// by one. It panics if i is out of range.
func (g *Group) RemoveAt(i int) Value {
	v := g.items[g.checkIndex(i)]
	copy(g.items[i:], g.items[i+1:])
	g.items[len(g.items)-1] = nil
	g.items = g.items[:len(g.items)-1]
	return v
}

// TakeAt returns the i-th element and empties the group. It is used when the
// group itself is no longer needed.
func (g *Group) TakeAt(i int) Value {
	v := g.items[g.checkIndex(i)]
	g.items = nil
	return v
}

// Equal reports whether other is a group with equal elements.
func (g *Group) Equal(other Value) bool {
	o, ok := other.(*Group)
	if !ok || (g == nil) != (o == nil) {
		return false
	}
	if g == nil || g == o {
		return true
	}
	if len(g.items) != len(o.items) {
		return false
	}
	for i := range g.items {
		if !Equal(g.items[i], o.items[i]) {
			return false
		}
	}
	return true
}

func (g *Group) checkIndex(i int) int {
	if i < 0 || i >= len(g.items) {
		panic(fmt.Sprintf("index %d out of range for group of %d", i, len(g.items)))
	}
	return i
}
