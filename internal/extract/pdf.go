package extract

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"rsc.io/pdf"
)

// Horizontal gaps between glyph runs on one line, relative to font size.
// Above wordGap the runs are joined with a space, above columnGap they land
// in separate cells.
const (
	wordGap   = 0.2
	columnGap = 2.0
)

type textLine struct {
	y    float64
	size float64
	runs []pdf.Text
}

// readPDF re-flows the text layer of every page into one row per line and
// one cell per column.
func readPDF(data []byte) (table Table, err error) {
	// rsc.io/pdf panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			table = nil
			err = fmt.Errorf("malformed document: %v", r)
		}
	}()

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	if doc.NumPage() == 0 {
		return nil, errors.New("document has no pages")
	}

	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		table = append(table, pageRows(page.Content().Text)...)
	}
	return table, nil
}

// pageRows groups glyph runs sharing a baseline and orders lines top to
// bottom, runs left to right.
func pageRows(texts []pdf.Text) Table {
	var lines []*textLine
	for _, t := range texts {
		var target *textLine
		for _, l := range lines {
			if math.Abs(l.y-t.Y) <= lineTolerance(l.size, t.FontSize) {
				target = l
				break
			}
		}
		if target == nil {
			target = &textLine{y: t.Y, size: t.FontSize}
			lines = append(lines, target)
		}
		target.runs = append(target.runs, t)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].y > lines[j].y
	})

	var table Table
	for _, l := range lines {
		if row := l.cells(); len(row) > 0 {
			table = append(table, row)
		}
	}
	return table
}

func (l *textLine) cells() []string {
	sort.SliceStable(l.runs, func(i, j int) bool {
		return l.runs[i].X < l.runs[j].X
	})

	var (
		cells []string
		b     strings.Builder
	)
	flush := func() {
		if cell := strings.TrimSpace(b.String()); cell != "" {
			cells = append(cells, cell)
		}
		b.Reset()
	}

	for i, run := range l.runs {
		if i > 0 {
			prev := l.runs[i-1]
			gap := run.X - (prev.X + prev.W)
			size := math.Max(run.FontSize, 1)
			switch {
			case gap > columnGap*size:
				flush()
			case gap > wordGap*size:
				b.WriteByte(' ')
			}
		}
		b.WriteString(run.S)
	}
	flush()
	return cells
}

func lineTolerance(a, b float64) float64 {
	return math.Max(math.Max(a, b)/2, 1)
}
