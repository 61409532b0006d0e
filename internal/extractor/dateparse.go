/*
FILE: internal/extractor/dateparse.go

DESCRIPTION:
    Given a cell value and the resolved workbook Context, produce a
    disambiguated, noon-normalized date. Numeric cells are treated as
    spreadsheet serials, native dates pass through, and string cells are
    matched against a DD-MM-flavored pattern with a reversed-order fallback
    driven by the context month.
==============================================================================
*/
package extractor

import (
	"regexp"
	"strconv"
	"time"

	"github.com/dopazo/hhr-census/internal/snapshot"
	"github.com/dopazo/hhr-census/internal/xlsxio"
)

var dateStringRe = regexp.MustCompile(`(\d{1,2})[\s.\-/]+(\d{1,2})(?:[\s.\-/]+(\d{2,4}))?`)

// excelEpochOffsetDays is the number of days between the Excel serial epoch
// (1899-12-30, accounting for the historical 1900 leap-year bug) and the
// Unix epoch.
const excelEpochOffsetDays = 25569

// ParseDate resolves a cell to a date using ctx to disambiguate ambiguous
// strings. ok is false if the cell carries no parseable date, a soft
// failure: the caller skips the sheet.
func ParseDate(cell xlsxio.Cell, ctx Context) (time.Time, bool) {
	switch cell.Type {
	case xlsxio.CellDate:
		return snapshot.Normalize(cell.Date), true
	case xlsxio.CellNumber:
		seconds := (cell.Number - excelEpochOffsetDays) * 86400
		return snapshot.Normalize(time.Unix(int64(seconds), 0).UTC()), true
	case xlsxio.CellString:
		return parseDateString(cell.Text, ctx)
	default:
		return time.Time{}, false
	}
}

func parseDateString(text string, ctx Context) (time.Time, bool) {
	m := dateStringRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	p1, err1 := strconv.Atoi(m[1])
	p2, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return time.Time{}, false
	}

	year := ctx.Year
	if m[3] != "" {
		if y, err := strconv.Atoi(m[3]); err == nil {
			if y < 100 {
				y += 2000
			}
			year = y
		}
	}
	if year == 0 {
		year = time.Now().Year()
	}

	var day, month int
	if ctx.Month != nil {
		wantMonth := *ctx.Month + 1 // 1-based for comparison against the parsed groups
		switch {
		case p2 == wantMonth:
			day, month = p1, p2-1
		case p1 == wantMonth:
			day, month = p2, p1-1
		default:
			day, month = p1, p2-1
		}
	} else {
		day, month = p1, p2-1
	}

	if month < 0 || month > 11 {
		return time.Time{}, false
	}

	candidate := time.Date(year, time.Month(month+1), day, 12, 0, 0, 0, time.Local)
	if int(candidate.Month())-1 != month {
		// Rollover (e.g. Feb 30 -> Mar 2): reject.
		return time.Time{}, false
	}
	return candidate, true
}
