package main

import (
	"fmt"
	"io"
	"os"

	"github.com/DjordjeVuckovic/code-comparator/internal/compare"
	"github.com/DjordjeVuckovic/code-comparator/internal/report"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderSummary draws the category counts. Colors are only applied when
// color is set so piped output stays plain.
func renderSummary(res compare.Result, labels report.Labels, color bool) string {
	paint := func(c text.Color, s string) string {
		if !color {
			return s
		}
		return c.Sprint(s)
	}

	c := res.Counts()
	return renderTable(
		[]string{"Category", "Count"},
		[][]string{
			{paint(text.FgGreen, "Total matches"), fmt.Sprint(c.Matches)},
			{paint(text.FgYellow, "Only in "+labels.First), fmt.Sprint(c.OnlyInFirst)},
			{paint(text.FgYellow, "Only in "+labels.Second), fmt.Sprint(c.OnlyInSecond)},
		},
		[]columnAlignment{alignLeft, alignRight},
	)
}

func writeResult(w io.Writer, res compare.Result, labels report.Labels) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", renderSummary(res, labels, isTerminal(w))); err != nil {
		return err
	}
	return report.WriteSections(w, res, labels)
}
