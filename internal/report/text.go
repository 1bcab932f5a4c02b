package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/DjordjeVuckovic/code-comparator/internal/compare"
)

const noDifferences = "No differences"

// WriteList writes one token per line.
func WriteList(w io.Writer, tokens []string) error {
	bw := bufio.NewWriter(w)
	for _, t := range tokens {
		if _, err := fmt.Fprintln(bw, t); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteSections writes every category under a labeled heading with its count.
func WriteSections(w io.Writer, r compare.Result, labels Labels) error {
	bw := bufio.NewWriter(w)

	sections := []struct {
		title  string
		tokens []string
		diff   bool
	}{
		{"Matching codes", r.Matches, false},
		{"Only in " + labels.First, r.OnlyInFirst, true},
		{"Only in " + labels.Second, r.OnlyInSecond, true},
	}

	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "%s (%d)\n", s.title, len(s.tokens))
		if len(s.tokens) == 0 && s.diff {
			fmt.Fprintln(bw, noDifferences)
			continue
		}
		for _, t := range s.tokens {
			fmt.Fprintln(bw, t)
		}
	}

	return bw.Flush()
}

// WriteExport renders the requested section the way it is offered for
// download.
func WriteExport(w io.Writer, r compare.Result, labels Labels, s Section) error {
	if s == All {
		return WriteSections(w, r, labels)
	}
	return WriteList(w, Tokens(r, s))
}
