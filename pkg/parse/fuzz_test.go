package parse

import "testing"

func FuzzParse(f *testing.F) {
	f.Add("(+ 1 2)")
	f.Add("(* (+ 1 2.5) (- 4))")
	f.Add("(% 7 (/ 1")
	f.Fuzz(func(t *testing.T, code string) {
		Parse(Source{Name: "fuzz", Code: code})
	})
}
