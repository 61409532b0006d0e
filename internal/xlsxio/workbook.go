/*
Package xlsxio - Workbook Reader Interface

==============================================================================
FILE: internal/xlsxio/workbook.go
==============================================================================

DESCRIPTION:
    The workbook reader boundary: parses a binary spreadsheet into a
    sequence of rows with typed cells. Defined as a Go interface so the
    extractor never depends on excelize directly; excelreader.go supplies
    the real adapter.

==============================================================================
*/
package xlsxio

import "time"

// CellType is the type tag a workbook reader attaches to each cell.
type CellType int

const (
	CellEmpty CellType = iota
	CellNumber
	CellString
	CellDate
)

// Cell is one worksheet cell: a number, string, date, or empty.
type Cell struct {
	Type   CellType
	Number float64
	Text   string
	Date   time.Time
}

// Workbook exposes sheet names (in stable, on-disk order) and, per sheet, a
// two-dimensional array of cells.
type Workbook interface {
	SheetNames() []string
	SheetCells(name string) ([][]Cell, error)
}

// IsBlank reports whether a cell carries no usable value.
func (c Cell) IsBlank() bool {
	return c.Type == CellEmpty || (c.Type == CellString && c.Text == "")
}
