// Package sheet provides worksheet abstractions over spreadsheet cell grids.
package sheet

import "fmt"

// Worksheet is a rectangular grid of cells with 1-based indices.
// Cell values are one of: nil (absent), string, int64, or float64.
type Worksheet interface {
	// Title returns the worksheet name.
	Title() string
	// MaxRow returns the highest row index in the used range, 0 for an
	// empty sheet.
	MaxRow() int
	// MaxCol returns the highest column index in the used range, 0 for an
	// empty sheet.
	MaxCol() int
	// Cell returns the value at (row, col). Out-of-range cells within
	// positive bounds are absent (nil). Indices below 1 are structurally
	// invalid and panic.
	Cell(row, col int) any
}

// Grid is an in-memory Worksheet backed by a row-major slice.
type Grid struct {
	title string
	rows  [][]any
	cols  int
}

// NewGrid builds a Grid from row-major values. rows[0][0] is cell (1, 1).
func NewGrid(title string, rows [][]any) *Grid {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return &Grid{title: title, rows: rows, cols: cols}
}

// Title returns the worksheet name.
func (g *Grid) Title() string { return g.title }

// MaxRow returns the number of rows in the grid.
func (g *Grid) MaxRow() int { return len(g.rows) }

// MaxCol returns the widest row length in the grid.
func (g *Grid) MaxCol() int { return g.cols }

// Cell returns the value at the 1-based (row, col) position.
func (g *Grid) Cell(row, col int) any {
	if row < 1 || col < 1 {
		panic(fmt.Sprintf("sheet: cell index out of range (%d, %d)", row, col))
	}
	if row > len(g.rows) {
		return nil
	}
	r := g.rows[row-1]
	if col > len(r) {
		return nil
	}
	return r[col-1]
}

// PruneLeadingRows returns a Grid with fully-empty leading rows removed,
// so the first non-empty row becomes row 1. Deletion is prefix-only and
// never removes interior blank rows. The returned Grid shares backing
// storage with the input.
func PruneLeadingRows(g *Grid) *Grid {
	skip := 0
	for skip < len(g.rows) && rowEmpty(g.rows[skip]) {
		skip++
	}
	if skip == 0 {
		return g
	}
	return &Grid{title: g.title, rows: g.rows[skip:], cols: g.cols}
}

func rowEmpty(row []any) bool {
	for _, v := range row {
		if v != nil {
			return false
		}
	}
	return true
}
