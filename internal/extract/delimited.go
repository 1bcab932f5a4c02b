package extract

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

func readDelimited(r io.Reader, comma rune, hasHeader bool) (Table, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = comma
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	var table Table
	first := true
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if first {
			first = false
			if len(row) > 0 {
				row[0] = strings.TrimPrefix(row[0], utf8BOM)
			}
			if hasHeader {
				continue
			}
		}
		table = append(table, row)
	}

	return table, nil
}

// readTabbed splits every line on tabs. Quotes carry no meaning, so each line
// stays one row however its cells are written. Blank lines are skipped.
func readTabbed(r io.Reader) (Table, error) {
	br := bufio.NewReader(r)

	var table Table
	first := true
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

		if first {
			first = false
			line = strings.TrimPrefix(line, utf8BOM)
		}
		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			table = append(table, strings.Split(line, "\t"))
		}

		if errors.Is(err, io.EOF) {
			return table, nil
		}
	}
}
