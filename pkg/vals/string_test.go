package vals

import (
	"math"
	"testing"

	. "github.com/ThomasBollmeier/build-your-own-lisp/pkg/tt"
)

func TestToString(t *testing.T) {
	Test(t, ToString,
		Args(Number(0)).Rets("0"),
		Args(Number(-42)).Rets("-42"),
		Args(Number(math.MaxInt64)).Rets("9223372036854775807"),
		Args(Number(math.MinInt64)).Rets("-9223372036854775808"),

		Args(Decimal(3.5)).Rets("3.5"),
		It("adds a fraction part to integral decimals").
			Args(Decimal(6)).Rets("6.0"),
		Args(Decimal(-0.25)).Rets("-0.25"),
		Args(Decimal(0.1)).Rets("0.1"),
		Args(Decimal(1e20)).Rets("1e+20"),
		Args(Decimal(1234567)).Rets("1234567.0"),
		Args(Decimal(0.00001)).Rets("1e-05"),
		Args(Decimal(-0.00001)).Rets("-1e-05"),
		Args(Decimal(math.Inf(1))).Rets("+Inf"),
		Args(Decimal(math.NaN())).Rets("NaN"),

		Args(Symbol("%")).Rets("%"),
		Args(Err(DivByZero)).Rets("Division by zero"),

		Args(NewGroup()).Rets("()"),
		Args(NewGroup(Symbol("+"), Number(1), Decimal(2.5))).Rets("(+ 1 2.5)"),
		Args(NewGroup(Symbol("*"), NewGroup(Symbol("-"), Number(4)), NewGroup())).
			Rets("(* (- 4) ())"),
	)
}

func TestPrinter(t *testing.T) {
	Test(t, Fn(Printer{"{", "}"}.Print).Named("Print"),
		Args(Number(1)).Rets("1"),
		Args(NewGroup()).Rets("{}"),
		Args(NewGroup(Symbol("+"), NewGroup(Number(1)))).Rets("{+ {1}}"),
	)
}
