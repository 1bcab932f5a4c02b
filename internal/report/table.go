package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/code-comparator/internal/compare"
)

// WriteSummary prints the category counts followed by the matched and
// unmatched codes side by side.
func WriteSummary(w io.Writer, r compare.Result, labels Labels) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Summary ===\n\n")
	fmt.Fprintln(tw, "Category\tCount")
	fmt.Fprintln(tw, "---\t---")
	c := r.Counts()
	fmt.Fprintf(tw, "Total matches\t%d\n", c.Matches)
	fmt.Fprintf(tw, "Only in %s\t%d\n", labels.First, c.OnlyInFirst)
	fmt.Fprintf(tw, "Only in %s\t%d\n", labels.Second, c.OnlyInSecond)
	fmt.Fprintln(tw)

	writeDifferences(tw, r, labels)

	return tw.Flush()
}

func writeDifferences(tw *tabwriter.Writer, r compare.Result, labels Labels) {
	header := []string{"In " + labels.First + " only", "In " + labels.Second + " only"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, "---\t---")

	rows := max(len(r.OnlyInFirst), len(r.OnlyInSecond), 1)
	for i := 0; i < rows; i++ {
		row := []string{cell(r.OnlyInFirst, i), cell(r.OnlyInSecond, i)}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	fmt.Fprintln(tw)
}

func cell(tokens []string, i int) string {
	if len(tokens) == 0 && i == 0 {
		return noDifferences
	}
	if i < len(tokens) {
		return tokens[i]
	}
	return ""
}
