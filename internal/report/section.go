package report

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/code-comparator/internal/compare"
)

type Section string

const (
	All          Section = "all"
	Matches      Section = "matches"
	OnlyInFirst  Section = "first"
	OnlyInSecond Section = "second"
)

func ParseSection(s string) (Section, error) {
	switch Section(strings.ToLower(strings.TrimSpace(s))) {
	case "", All:
		return All, nil
	case Matches:
		return Matches, nil
	case OnlyInFirst:
		return OnlyInFirst, nil
	case OnlyInSecond:
		return OnlyInSecond, nil
	default:
		return "", fmt.Errorf("unknown section %q, expected one of %v", s, []Section{All, Matches, OnlyInFirst, OnlyInSecond})
	}
}

// Labels name the two compared files in rendered output.
type Labels struct {
	First  string `json:"first" yaml:"first"`
	Second string `json:"second" yaml:"second"`
}

func DefaultLabels() Labels {
	return Labels{First: "First file", Second: "Second file"}
}

// Tokens returns the tokens of a single-category section. All has no single
// list and returns nil.
func Tokens(r compare.Result, s Section) []string {
	switch s {
	case Matches:
		return r.Matches
	case OnlyInFirst:
		return r.OnlyInFirst
	case OnlyInSecond:
		return r.OnlyInSecond
	default:
		return nil
	}
}

// Filename suggests a download name for an exported section.
func Filename(s Section) string {
	switch s {
	case Matches:
		return "matching_codes.txt"
	case OnlyInFirst:
		return "only_in_first.txt"
	case OnlyInSecond:
		return "only_in_second.txt"
	default:
		return "comparison_results.txt"
	}
}
