// Package diag locates and reports problems in lispy source code.
package diag

// Ranger is implemented by values that cover a span of source code.
type Ranger interface {
	Range() Ranging
}

// Ranging is the half-open byte span [From, To) of a piece of source code.
// Embedding it gives a struct the Range method; naming it Range would clash
// with that method.
type Ranging struct {
	From int
	To   int
}

func (r Ranging) Range() Ranging { return r }

// Contains reports whether p lies within r. The end counts as inside, so a
// cursor right after a token still touches it.
func (r Ranging) Contains(p int) bool { return r.From <= p && p <= r.To }

// PointRanging returns an empty span at p.
func PointRanging(p int) Ranging { return Ranging{p, p} }
