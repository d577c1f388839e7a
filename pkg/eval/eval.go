// Package eval implements the evaluator of lispy.
//
// Evaluation reduces a value tree to a single value. Numbers, decimals,
// symbols and errors evaluate to themselves. A group is reduced by first
// evaluating its elements from left to right, then:
//
//   - If any element is an error, the first such error is the result.
//   - An empty group evaluates to itself.
//   - A group with one element evaluates to that element.
//   - Otherwise the first element must be a symbol naming an operator, which
//     is applied to the remaining elements.
package eval

import (
	"sync"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/logutil"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/parse"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/read"
	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/vals"
)

var logger = logutil.GetLogger("[eval] ")

// Eval evaluates v. If v is a group, it is consumed by the evaluation and
// must not be used afterwards.
func Eval(v vals.Value) vals.Value {
	g, ok := v.(*vals.Group)
	if !ok {
		return v
	}
	for i := 0; i < g.Len(); i++ {
		r := Eval(g.At(i))
		g.Set(i, r)
		if _, isErr := r.(*vals.Error); isErr {
			return g.TakeAt(i)
		}
	}
	switch g.Len() {
	case 0:
		return g
	case 1:
		return g.TakeAt(0)
	}
	sym, ok := g.RemoveAt(0).(vals.Symbol)
	if !ok {
		return vals.Err(vals.NoSymbol)
	}
	op, ok := ParseOp(string(sym))
	if !ok {
		return vals.Errorf(vals.UnknownOp, "Unknown operator: %s", sym)
	}
	return apply(op, g)
}

// Applies op to the elements of args, which are consumed.
func apply(op Op, args *vals.Group) vals.Value {
	logger.Printf("applying %s to %d operands", op, args.Len())
	hasDecimal := false
	for i := 0; i < args.Len(); i++ {
		switch args.At(i).(type) {
		case vals.Number:
		case vals.Decimal:
			hasDecimal = true
		default:
			return vals.Err(vals.NonNumber)
		}
	}
	if op == Mod && hasDecimal {
		return vals.Err(vals.ModNonInt)
	}

	acc := args.RemoveAt(0)
	if hasDecimal {
		acc = toDecimal(acc)
	}
	if op == Sub && args.Len() == 0 {
		return negate(acc)
	}
	for args.Len() > 0 {
		y := args.RemoveAt(0)
		if hasDecimal {
			acc = op.combineDecimal(acc.(vals.Decimal), toDecimal(y))
		} else {
			acc = op.combineNumber(acc.(vals.Number), y.(vals.Number))
		}
		if _, isErr := acc.(*vals.Error); isErr {
			logger.Printf("%s failed: %s", op, vals.ToString(acc))
			return acc
		}
	}
	return acc
}

func toDecimal(v vals.Value) vals.Decimal {
	switch v := v.(type) {
	case vals.Number:
		return vals.Decimal(v)
	case vals.Decimal:
		return v
	}
	panic("not numeric: " + vals.Kind(v))
}

func negate(v vals.Value) vals.Value {
	switch v := v.(type) {
	case vals.Number:
		return -v
	case vals.Decimal:
		return -v
	}
	panic("not numeric: " + vals.Kind(v))
}

// Evaler evaluates source code and renders the results. An Evaler is safe to
// use concurrently.
type Evaler struct {
	mu      sync.Mutex
	printer vals.Printer
}

// NewEvaler returns a new Evaler that renders groups with parentheses.
func NewEvaler() *Evaler {
	return &Evaler{printer: vals.DefaultPrinter}
}

// SetPrinter changes how the Evaler renders values.
func (ev *Evaler) SetPrinter(p vals.Printer) {
	ev.mu.Lock()
	defer ev.mu.Unlock()
	ev.printer = p
}

// Render converts a value to text.
func (ev *Evaler) Render(v vals.Value) string {
	ev.mu.Lock()
	p := ev.printer
	ev.mu.Unlock()
	return p.Print(v)
}

// Eval parses, reads and evaluates src. The top-level expressions of src are
// treated as the elements of one group, so "+ 1 2" and "(+ 1 2)" both
// evaluate to 3.
//
// If src can't be parsed, the returned error contains the parse errors and
// the value is nil. If the result is an error value, it is returned both as
// the value and as the error.
func (ev *Evaler) Eval(src parse.Source) (vals.Value, error) {
	v, err := read.Source(src)
	if err != nil {
		return nil, err
	}
	r := Eval(v)
	if e, ok := r.(*vals.Error); ok {
		return r, e
	}
	return r, nil
}
