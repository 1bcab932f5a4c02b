package extract

import (
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// readWorkbook reads the first sheet of an OOXML workbook.
func readWorkbook(r io.Reader, hasHeader bool) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("Failed to close workbook", "error", err)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if hasHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	return rows, nil
}
