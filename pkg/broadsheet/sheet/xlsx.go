package sheet

import (
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Workbook is an ordered collection of worksheets loaded into memory.
type Workbook struct {
	// Name is the workbook file name (no path).
	Name string
	// Sheets holds the worksheets in workbook order.
	Sheets []*Grid
}

// OpenWorkbook loads an xlsx file into an in-memory Workbook. A sheet
// whose rows cannot be read is kept as an empty grid so the remaining
// sheets still load.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb := &Workbook{Name: filepath.Base(path)}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			slog.Warn("skipping unreadable sheet", "sheet", name, "error", err)
			rows = nil
		}
		wb.Sheets = append(wb.Sheets, gridFromRows(name, rows))
	}
	return wb, nil
}

func gridFromRows(name string, rows [][]string) *Grid {
	parsed := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, raw := range row {
			if raw == "" {
				continue
			}
			cells[j] = parseValue(raw)
		}
		parsed[i] = cells
	}
	return NewGrid(name, parsed)
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
