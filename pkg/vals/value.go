// Package vals contains the runtime values of lispy and operations on them.
//
// A [Value] is one of [Number], [Decimal], [Symbol], [*Error] and [*Group].
// The set is closed; no other type implements [Value].
//
// A group owns its children. A value is never stored in two groups at the same
// time, so values always form a tree. Values that are no longer referenced are
// reclaimed by the garbage collector; there is no explicit destruction.
package vals

// Value is a lispy value.
type Value interface {
	value()
}

// Number is an exact integer.
type Number int64

// Decimal is an approximate floating point number.
type Decimal float64

// Symbol is a name. Only the names of operators are meaningful to the
// evaluator.
type Symbol string

func (Number) value()  {}
func (Decimal) value() {}
func (Symbol) value()  {}
func (*Error) value()  {}
func (*Group) value()  {}

// Kind returns the name of the variant of v: "number", "decimal", "symbol",
// "error" or "group".
func Kind(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case Decimal:
		return "decimal"
	case Symbol:
		return "symbol"
	case *Error:
		return "error"
	case *Group:
		return "group"
	default:
		return "nil"
	}
}

// IsNumeric reports whether v is a [Number] or a [Decimal].
func IsNumeric(v Value) bool {
	switch v.(type) {
	case Number, Decimal:
		return true
	}
	return false
}

// Equal reports whether two values are structurally equal. Decimals are
// compared with ==, so NaN is not equal to itself.
func Equal(x, y Value) bool {
	switch x := x.(type) {
	case *Group:
		return x.Equal(y)
	case *Error:
		y, ok := y.(*Error)
		return ok && (x == y || x != nil && y != nil && *x == *y)
	default:
		return x == y
	}
}
