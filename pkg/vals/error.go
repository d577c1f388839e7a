package vals

import "fmt"

// ErrorKind classifies an [Error].
type ErrorKind int

// Kinds of errors produced while reading and evaluating.
const (
	// A literal could not be converted to a number.
	BadNumber ErrorKind = iota
	// An operand of an arithmetic operator is not a number.
	NonNumber
	// A group with two or more elements does not start with a symbol.
	NoSymbol
	DivByZero
	ModByZero
	// An operand of % is a decimal.
	ModNonInt
	// A symbol in operator position does not name an operator.
	UnknownOp
	// The reader got a node it does not know how to convert.
	BadNode
)

var kindNames = [...]string{
	BadNumber: "BadNumber",
	NonNumber: "NonNumber",
	NoSymbol:  "NoSymbol",
	DivByZero: "DivByZero",
	ModByZero: "ModByZero",
	ModNonInt: "ModNonInt",
	UnknownOp: "UnknownOp",
	BadNode:   "BadNode",
}

func (k ErrorKind) String() string {
	if 0 <= k && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

var fixedMessages = map[ErrorKind]string{
	BadNumber: "invalid number",
	NonNumber: "Cannot operate on non-number!",
	NoSymbol:  "S-expression does not start with symbol.",
	DivByZero: "Division by zero",
	ModByZero: "Module operation not defined for zero divisor",
	ModNonInt: "Module operation requires integer numbers",
}

// Error is a value that marks a failure. Once produced during evaluation, it
// replaces the group that contains it.
//
// Error also implements the error interface.
type Error struct {
	Kind    ErrorKind
	Message string
}

// NewError returns a new *Error.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{kind, msg}
}

// Errorf returns a new *Error with a message built with fmt.Sprintf.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{kind, fmt.Sprintf(format, args...)}
}

// Err returns a new *Error with the standard message of the kind. It panics
// for kinds whose message depends on the culprit, namely [UnknownOp] and
// [BadNode].
func Err(kind ErrorKind) *Error {
	msg, ok := fixedMessages[kind]
	if !ok {
		panic("no standard message for " + kind.String())
	}
	return &Error{kind, msg}
}

func (e *Error) Error() string { return e.Message }
