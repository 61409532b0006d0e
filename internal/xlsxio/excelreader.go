package xlsxio

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExcelizeWorkbook is the real Workbook adapter, backed by excelize.
type ExcelizeWorkbook struct {
	f *excelize.File
}

// OpenExcelize decodes workbook bytes with excelize.
func OpenExcelize(data []byte) (*ExcelizeWorkbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &ExcelizeWorkbook{f: f}, nil
}

// Close releases the underlying excelize file.
func (w *ExcelizeWorkbook) Close() error {
	return w.f.Close()
}

// SheetNames returns sheet tabs in their on-disk order.
func (w *ExcelizeWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// SheetCells reads a sheet's rows and classifies each cell.
//
// excelize's GetRows returns the display value of each cell (formulas
// evaluated, number formats applied), so a genuine date-formatted cell
// surfaces as a formatted date string here rather than as CellDate; the
// extractor's string date-parsing branch handles that case.
// A cell holding a bare, unformatted serial number surfaces as CellNumber,
// exercising the spreadsheet-serial branch. CellDate is reserved for
// in-memory Workbook implementations (used by extractor tests) that carry a
// native time.Time straight through.
func (w *ExcelizeWorkbook) SheetCells(name string) ([][]Cell, error) {
	rows, err := w.f.GetRows(name)
	if err != nil {
		return nil, err
	}
	out := make([][]Cell, len(rows))
	for i, row := range rows {
		cells := make([]Cell, len(row))
		for j, raw := range row {
			cells[j] = classify(raw)
		}
		out[i] = cells
	}
	return out, nil
}

func classify(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Type: CellEmpty}
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Cell{Type: CellNumber, Number: n, Text: raw}
	}
	return Cell{Type: CellString, Text: raw}
}
