package extractor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dopazo/hhr-census/internal/apierrors"
	"github.com/dopazo/hhr-census/internal/snapshot"
	"github.com/dopazo/hhr-census/internal/xlsxio"
)

// fakeWorkbook is an in-memory xlsxio.Workbook used so extractor tests never
// touch excelize or the filesystem.
type fakeWorkbook struct {
	names map[string][][]xlsxio.Cell
	order []string
}

func newFakeWorkbook() *fakeWorkbook {
	return &fakeWorkbook{names: map[string][][]xlsxio.Cell{}}
}

func (f *fakeWorkbook) addSheet(name string, rows [][]xlsxio.Cell) {
	f.names[name] = rows
	f.order = append(f.order, name)
}

func (f *fakeWorkbook) SheetNames() []string { return f.order }

func (f *fakeWorkbook) SheetCells(name string) ([][]xlsxio.Cell, error) {
	return f.names[name], nil
}

func str(s string) xlsxio.Cell  { return xlsxio.Cell{Type: xlsxio.CellString, Text: s} }
func num(n float64) xlsxio.Cell { return xlsxio.Cell{Type: xlsxio.CellNumber, Number: n, Text: ""} }

func headerRow() []xlsxio.Cell {
	return []xlsxio.Cell{str("RUT"), str("PACIENTE"), str("EDAD"), str("TIPO"), str("UPC"), str("PATOLOGIA")}
}

// A filename month must win over a DD-MM default reading of the bare sheet
// tab: "01-11" in a November workbook is November 1st, not January 11th.
func TestExtract_DateDisambiguationFromFilename(t *testing.T) {
	wb := newFakeWorkbook()
	wb.addSheet("01-11", [][]xlsxio.Cell{
		headerRow(),
		{str("11111111-1"), str("Juan Perez"), num(40), str("MEDIA"), str(""), str("Neumonia")},
	})

	snaps, err := Extract(wb, "11. NOVIEMBRE 2025.xlsx")
	require.NoError(t, err)
	require.Len(t, snaps, 1)

	want := time.Date(2025, time.November, 1, 12, 0, 0, 0, time.Local)
	assert.True(t, snapshot.SameDate(want, snaps[0].Date), "expected 2025-11-01, got %v", snaps[0].Date)
}

// A repeated header-like row inside the data block is dropped, not emitted
// as a patient.
func TestExtract_GhostHeaderRowDropped(t *testing.T) {
	wb := newFakeWorkbook()
	wb.addSheet("03-11-25", [][]xlsxio.Cell{
		headerRow(),
		{str("11111111-1"), str("Juan Perez"), num(40), str("MEDIA"), str(""), str("Neumonia")},
		{str(""), str("NOMBRE"), str(""), str(""), str(""), str("")},
		{str("22222222-2"), str("Maria Soto"), num(55), str("UCI"), str("SI"), str("Sepsis")},
	})

	snaps, err := Extract(wb, "census.xlsx")
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, "JUAN PEREZ", snaps[0].NormalizedName)
	assert.Equal(t, "MARIA SOTO", snaps[1].NormalizedName)
}

// Bare two-group tabs cannot say which group is the month; without a
// filename month or a year-anchored tab, the context month stays unset.
func TestResolveContext_BareTabsLeaveMonthUndetermined(t *testing.T) {
	ctx := ResolveContext("census.xlsx", []string{"01-11", "02-11", "03-11"})
	assert.Nil(t, ctx.Month)

	anchored := ResolveContext("census.xlsx", []string{"01-11-25", "02-11-25"})
	require.NotNil(t, anchored.Month)
	assert.Equal(t, 10, *anchored.Month)
	assert.Equal(t, 2025, anchored.Year)
}

func TestExtract_BlockMarkersAssignStatus(t *testing.T) {
	wb := newFakeWorkbook()
	wb.addSheet("05-11-25", [][]xlsxio.Cell{
		headerRow(),
		{str("11111111-1"), str("Juan Perez"), num(40), str("MEDIA"), str(""), str("Neumonia")},
		{str("ALTAS DEL DIA")},
		headerRow(),
		{str("33333333-3"), str("Pedro Diaz"), num(30), str("MEDIA"), str(""), str("Apendicitis")},
		{str("TRASLADOS")},
		headerRow(),
		{str("44444444-4"), str("Ana Rios"), num(22), str("MEDIA"), str(""), str("Fractura")},
	})

	snaps, err := Extract(wb, "census.xlsx")
	require.NoError(t, err)
	require.Len(t, snaps, 3)
	assert.Equal(t, snapshot.StatusHospitalized, snaps[0].Status)
	assert.Equal(t, snapshot.StatusDischarged, snaps[1].Status)
	assert.Equal(t, snapshot.StatusTransferred, snaps[2].Status)
}

func TestExtract_BlockedPlaceholderRowsDropped(t *testing.T) {
	wb := newFakeWorkbook()
	wb.addSheet("06-11-25", [][]xlsxio.Cell{
		headerRow(),
		{str(""), str("BLOQUEO MANTENCION"), str(""), str("MEDIA"), str(""), str("")},
		{str(""), str("AISLAMIENTO COVID"), str(""), str("MEDIA"), str(""), str("")},
		{str("11111111-1"), str("Juan Perez"), num(40), str("MEDIA"), str(""), str("Neumonia")},
	})

	snaps, err := Extract(wb, "census.xlsx")
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "JUAN PEREZ", snaps[0].NormalizedName)
}

// An empty name cell disqualifies a row outright, even when a RUT and a
// diagnosis are present (a diagnosis-only annotation row is not a patient).
func TestExtract_EmptyNameRowsDropped(t *testing.T) {
	wb := newFakeWorkbook()
	wb.addSheet("08-11-25", [][]xlsxio.Cell{
		headerRow(),
		{str("55555555-5"), str(""), str(""), str("MEDIA"), str(""), str("Observacion")},
		{str("11111111-1"), str("Juan Perez"), num(40), str("MEDIA"), str(""), str("Neumonia")},
	})

	snaps, err := Extract(wb, "census.xlsx")
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "JUAN PEREZ", snaps[0].NormalizedName)
}

func TestExtract_RowsWithoutIdentifierOrDiagnosisDropped(t *testing.T) {
	wb := newFakeWorkbook()
	wb.addSheet("07-11-25", [][]xlsxio.Cell{
		headerRow(),
		{str(""), str(""), str(""), str(""), str(""), str("")},
	})

	snaps, err := Extract(wb, "census.xlsx")
	require.NoError(t, err)
	assert.Empty(t, snaps)
}

func TestExtract_UnparseableSheetNameIsSkipped(t *testing.T) {
	wb := newFakeWorkbook()
	wb.addSheet("Resumen", [][]xlsxio.Cell{
		headerRow(),
		{str("11111111-1"), str("Juan Perez"), num(40), str("MEDIA"), str(""), str("Neumonia")},
	})

	snaps, err := Extract(wb, "census.xlsx")
	require.NoError(t, err)
	assert.Empty(t, snaps)
}

func TestExtract_SheetsProcessedInAscendingDateOrder(t *testing.T) {
	wb := newFakeWorkbook()
	wb.addSheet("05-11-25", [][]xlsxio.Cell{
		headerRow(),
		{str("22222222-2"), str("Segundo Dia"), num(1), str("MEDIA"), str(""), str("Dx")},
	})
	wb.addSheet("01-11-25", [][]xlsxio.Cell{
		headerRow(),
		{str("11111111-1"), str("Primer Dia"), num(1), str("MEDIA"), str(""), str("Dx")},
	})

	snaps, err := Extract(wb, "census.xlsx")
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, "PRIMER DIA", snaps[0].NormalizedName)
	assert.Equal(t, "SEGUNDO DIA", snaps[1].NormalizedName)
}

func TestParseWorkbook_OpenFailureWrapsParseError(t *testing.T) {
	_, err := ParseWorkbook([]byte("not a real workbook"), "bad.xlsx")
	require.Error(t, err)
	var parseErr *apierrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "bad.xlsx", parseErr.File)
}
