// Package compare computes the shared and one-sided codes of two uploads.
package compare

import (
	"github.com/DjordjeVuckovic/code-comparator/internal/token"
)

// Result is the three-way relationship between two token sets. Each slice is
// sorted ascending and never nil.
type Result struct {
	Matches      []string `json:"matches"`
	OnlyInFirst  []string `json:"onlyInFirst"`
	OnlyInSecond []string `json:"onlyInSecond"`
}

type Counts struct {
	Matches      int `json:"matches"`
	OnlyInFirst  int `json:"onlyInFirst"`
	OnlyInSecond int `json:"onlyInSecond"`
}

// Compare returns A∩B, A−B and B−A. Neither input is modified.
func Compare(a, b token.Set) Result {
	matches := token.NewSet()
	onlyA := token.NewSet()
	onlyB := token.NewSet()

	for t := range a {
		if b.Contains(t) {
			matches.Add(t)
		} else {
			onlyA.Add(t)
		}
	}
	for t := range b {
		if !a.Contains(t) {
			onlyB.Add(t)
		}
	}

	return Result{
		Matches:      matches.Sorted(),
		OnlyInFirst:  onlyA.Sorted(),
		OnlyInSecond: onlyB.Sorted(),
	}
}

func (r Result) Counts() Counts {
	return Counts{
		Matches:      len(r.Matches),
		OnlyInFirst:  len(r.OnlyInFirst),
		OnlyInSecond: len(r.OnlyInSecond),
	}
}

// Swap returns the result as seen with the inputs exchanged.
func (r Result) Swap() Result {
	return Result{
		Matches:      r.Matches,
		OnlyInFirst:  r.OnlyInSecond,
		OnlyInSecond: r.OnlyInFirst,
	}
}

// Identical reports whether both inputs held exactly the same tokens.
func (r Result) Identical() bool {
	return len(r.OnlyInFirst) == 0 && len(r.OnlyInSecond) == 0
}
