/*
Package extractor - Workbook to Snapshot Pipeline Stage

==============================================================================
FILE: internal/extractor/extractor.go
==============================================================================

DESCRIPTION:
    Ties context resolution, date disambiguation, and row decoding together:
    given a Workbook, walks every sheet, resolves its date, and decodes its
    rows into Snapshots. Sheets whose tab name carries no parseable date are
    skipped rather than failing the whole extraction.

==============================================================================
*/
package extractor

import (
	"sort"
	"time"

	"github.com/dopazo/hhr-census/internal/apierrors"
	"github.com/dopazo/hhr-census/internal/snapshot"
	"github.com/dopazo/hhr-census/internal/xlsxio"
)

// sheetDate pairs a resolved sheet name with the date it decoded to, so
// sheets can be processed in chronological rather than on-disk order.
type sheetDate struct {
	name string
	date time.Time
}

// Extract walks every sheet of wb, resolving each sheet tab to a calendar
// date via ResolveContext/parseDateString and decoding its rows into Snapshots.
// Sheets that carry no parseable date are skipped. filename is used only to
// seed date disambiguation and tag SourceFile.
func Extract(wb xlsxio.Workbook, filename string) ([]snapshot.Snapshot, error) {
	names := wb.SheetNames()
	ctx := ResolveContext(filename, names)

	var resolved []sheetDate
	for _, name := range names {
		d, ok := parseDateString(name, ctx)
		if !ok {
			continue
		}
		resolved = append(resolved, sheetDate{name: name, date: d})
	}

	sort.Slice(resolved, func(i, j int) bool {
		return resolved[i].date.Before(resolved[j].date)
	})

	var out []snapshot.Snapshot
	for _, sd := range resolved {
		rows, err := wb.SheetCells(sd.name)
		if err != nil {
			return nil, apierrors.Wrap(err, &apierrors.AppError{
				Code:    "SHEET_READ_FAILED",
				Message: "failed to read sheet " + sd.name,
				Err:     err,
			})
		}
		out = append(out, decodeSheet(rows, sd.date, filename)...)
	}

	return out, nil
}

// ParseWorkbook opens raw workbook bytes with the excelize-backed reader and
// extracts its Snapshots in one call, wrapping open failures in a
// ParseError.
func ParseWorkbook(data []byte, filename string) ([]snapshot.Snapshot, error) {
	wb, err := xlsxio.OpenExcelize(data)
	if err != nil {
		return nil, &apierrors.ParseError{File: filename, Cause: err}
	}
	defer wb.Close()

	snaps, err := Extract(wb, filename)
	if err != nil {
		return nil, &apierrors.ParseError{File: filename, Cause: err}
	}
	return snaps, nil
}
