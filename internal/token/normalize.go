package token

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Policy controls how raw cell values become tokens.
type Policy struct {
	// CaseSensitive keeps the original case. When false every token is
	// upper-cased before comparison.
	CaseSensitive bool
}

func DefaultPolicy() Policy {
	return Policy{CaseSensitive: true}
}

// NormalizeToken trims surrounding whitespace and applies the case policy.
// It reports false for values that are blank after trimming.
func NormalizeToken(p Policy, raw string) (string, bool) {
	t := strings.TrimSpace(raw)
	if t == "" {
		return "", false
	}
	if !p.CaseSensitive {
		t = cases.Upper(language.Und).String(t)
	}
	return t, true
}

// Normalize flattens every cell of table, regardless of row or column, into
// a Set of normalized tokens. Blank cells are dropped.
func Normalize(p Policy, table [][]string) Set {
	s := make(Set)
	for _, row := range table {
		for _, cell := range row {
			if t, ok := NormalizeToken(p, cell); ok {
				s.Add(t)
			}
		}
	}
	return s
}

// NormalizeSet re-applies the policy to an existing set. Running it on a set
// produced by Normalize with the same policy returns an equal set.
func NormalizeSet(p Policy, in Set) Set {
	out := make(Set, len(in))
	for raw := range in {
		if t, ok := NormalizeToken(p, raw); ok {
			out.Add(t)
		}
	}
	return out
}
