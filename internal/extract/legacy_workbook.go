package extract

import (
	"errors"
	"fmt"
	"io"

	"github.com/extrame/xls"
)

const legacyCharset = "utf-8"

// readLegacyWorkbook reads the first sheet of a BIFF (.xls) workbook.
func readLegacyWorkbook(r io.ReadSeeker, hasHeader bool) (table Table, err error) {
	// the BIFF decoder indexes records without bounds checks
	defer func() {
		if rec := recover(); rec != nil {
			table = nil
			err = fmt.Errorf("malformed workbook: %v", rec)
		}
	}()

	wb, err := xls.OpenReader(r, legacyCharset)
	if err != nil {
		return nil, err
	}
	if wb == nil {
		return nil, errors.New("no workbook stream found")
	}
	if wb.NumSheets() == 0 {
		return nil, nil
	}

	sheet := wb.GetSheet(0)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheetRow(sheet, i)
		if row == nil {
			continue
		}
		cells := make([]string, 0, row.LastCol()-row.FirstCol()+1)
		for col := row.FirstCol(); col <= row.LastCol(); col++ {
			cells = append(cells, row.Col(col))
		}
		table = append(table, trimTrailingBlanks(cells))
	}

	if hasHeader && len(table) > 0 {
		table = table[1:]
	}
	return table, nil
}

// sheetRow returns nil for rows the sheet never wrote.
func sheetRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

func trimTrailingBlanks(cells []string) []string {
	end := len(cells)
	for end > 0 && cells[end-1] == "" {
		end--
	}
	return cells[:end]
}
