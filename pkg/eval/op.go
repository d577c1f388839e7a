package eval

import (
	"math"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/vals"
)

// Op is an arithmetic operator.
type Op int

// Operators.
const (
	Add Op = iota
	Sub
	Mul
	Div
	Mod
)

// Eps is the smallest magnitude of a decimal divisor; divisors closer to zero
// are treated as zero.
const Eps = 1e-12

var opNames = [...]string{Add: "+", Sub: "-", Mul: "*", Div: "/", Mod: "%"}

func (op Op) String() string {
	if 0 <= op && int(op) < len(opNames) {
		return opNames[op]
	}
	return "?"
}

// ParseOp returns the operator named by s.
func ParseOp(s string) (Op, bool) {
	for op, name := range opNames {
		if name == s {
			return Op(op), true
		}
	}
	return 0, false
}

// Combines two numbers. The result is a Number or an *Error.
func (op Op) combineNumber(x, y vals.Number) vals.Value {
	switch op {
	case Add:
		return x + y
	case Sub:
		return x - y
	case Mul:
		return x * y
	case Div:
		if y == 0 {
			return vals.Err(vals.DivByZero)
		}
		// Truncates toward zero. math.MinInt64 / -1 wraps to math.MinInt64.
		return x / y
	case Mod:
		if y == 0 {
			return vals.Err(vals.ModByZero)
		}
		return x % y
	}
	panic("unreachable")
}

// Combines two decimals. The result is a Decimal or an *Error.
func (op Op) combineDecimal(x, y vals.Decimal) vals.Value {
	switch op {
	case Add:
		return x + y
	case Sub:
		return x - y
	case Mul:
		return x * y
	case Div:
		if math.Abs(float64(y)) < Eps {
			return vals.Err(vals.DivByZero)
		}
		return x / y
	case Mod:
		return vals.Err(vals.ModNonInt)
	}
	panic("unreachable")
}
