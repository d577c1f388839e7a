package vals

import (
	"math"
	"strconv"
	"strings"
)

// Printer converts values to text, wrapping groups in the Open and Close
// brackets.
type Printer struct {
	Open, Close string
}

// DefaultPrinter wraps groups in parentheses.
var DefaultPrinter = Printer{"(", ")"}

// ToString converts a value to text with [DefaultPrinter].
func ToString(v Value) string {
	return DefaultPrinter.Print(v)
}

// Print converts a value to text.
func (p Printer) Print(v Value) string {
	var sb strings.Builder
	p.print(&sb, v)
	return sb.String()
}

func (p Printer) print(sb *strings.Builder, v Value) {
	switch v := v.(type) {
	case Number:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	case Decimal:
		sb.WriteString(formatFloat64(float64(v)))
	case Symbol:
		sb.WriteString(string(v))
	case *Error:
		sb.WriteString(v.Message)
	case *Group:
		sb.WriteString(p.Open)
		for i, item := range v.items {
			if i > 0 {
				sb.WriteByte(' ')
			}
			p.print(sb, item)
		}
		sb.WriteString(p.Close)
	}
}

// Uses fixed notation unless the number is very large or very small, and
// always writes a fraction part so that a decimal never looks like a number.
func formatFloat64(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	noPoint := !strings.ContainsRune(s, '.')
	if (noPoint && len(s) > 14 && s[len(s)-1] == '0') ||
		strings.HasPrefix(s, "0.0000") || strings.HasPrefix(s, "-0.0000") {
		return strconv.FormatFloat(f, 'e', -1, 64)
	} else if noPoint && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return s + ".0"
	}
	return s
}
