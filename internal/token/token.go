// Package token turns extracted cells into comparable code tokens.
package token

import (
	"sort"
)

// Set is the deduplicated collection of tokens extracted from one file.
type Set map[string]struct{}

func NewSet(tokens ...string) Set {
	s := make(Set, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

func (s Set) Add(t string) {
	s[t] = struct{}{}
}

func (s Set) Contains(t string) bool {
	_, ok := s[t]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Sorted returns the tokens in ascending lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
