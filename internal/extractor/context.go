/*
Package extractor - Workbook Context Resolution

==============================================================================
FILE: internal/extractor/context.go
==============================================================================

DESCRIPTION:
    Resolves a per-workbook (year, month?) context used to disambiguate bare
    date strings found in sheet tab names. Worksheet tabs are named things
    like "01-11", "1.11", or "Sabado 4-11-25", either day-month or
    month-day, with or without a year; the filename and the tabs are scanned
    to settle the question.

==============================================================================
*/
package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Context is the disambiguation context resolved for one workbook.
type Context struct {
	Year  int
	Month *int // 0-11, nil if undetermined
}

var spanishMonths = []string{
	"ENERO", "FEBRERO", "MARZO", "ABRIL", "MAYO", "JUNIO",
	"JULIO", "AGOSTO", "SEPTIEMBRE", "OCTUBRE", "NOVIEMBRE", "DICIEMBRE",
}

var yearRe = regexp.MustCompile(`20\d\d`)
var sheetNumericRe = regexp.MustCompile(`(\d{1,2})[\s.\-/]+(\d{1,2})(?:[\s.\-/]+(\d{2,4}))?`)

// ResolveContext scans the filename for a Spanish month name and a year,
// scans every sheet tab for numeric date groups, and majority-votes the
// dominant year and month for the workbook.
func ResolveContext(filename string, sheetNames []string) Context {
	filenameMonth, filenameYear := scanFilename(filename)

	yearVotes := map[int]int{}
	monthVotes := map[int]int{}
	for _, name := range sheetNames {
		m := sheetNumericRe.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		// Only a three-group tab ("4-11-25") anchors day vs. month; a bare
		// two-group tab ("01-11") is ambiguous and contributes no vote.
		if m[3] == "" {
			continue
		}
		if month, err := strconv.Atoi(m[2]); err == nil && month >= 1 && month <= 12 {
			monthVotes[month-1]++
		}
		if year, err := strconv.Atoi(m[3]); err == nil {
			if year < 100 {
				year += 2000
			}
			yearVotes[year]++
		}
	}

	ctx := Context{}
	if year, ok := mode(yearVotes); ok {
		ctx.Year = year
	} else if filenameYear != nil {
		ctx.Year = *filenameYear
	} else {
		ctx.Year = time.Now().Year()
	}

	if filenameMonth != nil {
		ctx.Month = filenameMonth
	} else if month, ok := mode(monthVotes); ok {
		ctx.Month = &month
	}

	return ctx
}

func scanFilename(filename string) (month *int, year *int) {
	upper := strings.ToUpper(filename)
	for i, name := range spanishMonths {
		if strings.Contains(upper, name) {
			m := i
			month = &m
			break
		}
	}
	if y := yearRe.FindString(upper); y != "" {
		if parsed, err := strconv.Atoi(y); err == nil {
			year = &parsed
		}
	}
	return month, year
}

// mode returns the most frequent key in votes, or ok=false if votes is empty.
// Ties break toward the smaller key for determinism.
func mode(votes map[int]int) (int, bool) {
	best, bestCount := 0, 0
	found := false
	for k, c := range votes {
		if !found || c > bestCount || (c == bestCount && k < best) {
			best, bestCount, found = k, c, true
		}
	}
	return best, found
}
