/*
FILE: internal/reporter/periods.go

DESCRIPTION:
    Calendar iterators: monthly, quarterly, yearly, and arbitrary-range
    report generation on top of ReportForPeriod.
==============================================================================
*/
package reporter

import (
	"fmt"
	"sort"
	"time"

	"github.com/dopazo/hhr-census/internal/event"
	"github.com/dopazo/hhr-census/internal/report"
)

const defaultMaxMonthlyReports = 36

// spanishMonthNames feeds report titles; the consumers of these reports
// work in Spanish.
var spanishMonthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

func firstOfMonth(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 12, 0, 0, 0, time.Local)
}

func lastOfMonth(y int, m time.Month) time.Time {
	return firstOfMonth(y, m).AddDate(0, 1, 0).AddDate(0, 0, -1)
}

// eventSpan returns the earliest FirstSeen and latest observed date (exit or
// LastSeen, whichever is later) across all events, used to bound the
// monthly/yearly iterators. ok is false if events is empty.
func eventSpan(events []event.Event) (min, max time.Time, ok bool) {
	for i, e := range events {
		end := e.LastSeen
		if exit := e.ExitDate(); exit != nil && exit.After(end) {
			end = *exit
		}
		if i == 0 {
			min, max = e.FirstSeen, end
			continue
		}
		if e.FirstSeen.Before(min) {
			min = e.FirstSeen
		}
		if end.After(max) {
			max = end
		}
	}
	return min, max, len(events) > 0
}

// MonthlyReports produces one report per non-empty calendar month spanned
// by the dataset, bounded to the maxReports most recent months.
// maxReports <= 0 uses the default of 36.
func MonthlyReports(events []event.Event, maxReports int, bedCapacity int) []report.Report {
	if maxReports <= 0 {
		maxReports = defaultMaxMonthlyReports
	}
	minDate, maxDate, ok := eventSpan(events)
	if !ok {
		return nil
	}

	var reports []report.Report
	cursor := firstOfMonth(minDate.Year(), minDate.Month())
	limit := firstOfMonth(maxDate.Year(), maxDate.Month())
	for !cursor.After(limit) {
		start := cursor
		end := lastOfMonth(cursor.Year(), cursor.Month())
		title := fmt.Sprintf("%s %d", spanishMonthNames[cursor.Month()-1], cursor.Year())
		if r, found := ReportForPeriod(events, title, start, end, bedCapacity); found {
			reports = append(reports, *r)
		}
		cursor = cursor.AddDate(0, 1, 0)
	}

	if len(reports) > maxReports {
		sort.Slice(reports, func(i, j int) bool { return reports[i].StartDate.Before(reports[j].StartDate) })
		reports = reports[len(reports)-maxReports:]
	}
	return reports
}

// QuarterlyReport covers one calendar quarter of the given year.
func QuarterlyReport(events []event.Event, year, quarter int, bedCapacity int) (*report.Report, bool) {
	if quarter < 1 || quarter > 4 {
		return nil, false
	}
	startMonth := time.Month(3*(quarter-1) + 1)
	start := firstOfMonth(year, startMonth)
	end := start.AddDate(0, 3, 0).AddDate(0, 0, -1)
	title := fmt.Sprintf("Q%d %d", quarter, year)
	return ReportForPeriod(events, title, start, end, bedCapacity)
}

// YearlyReport clamps the requested calendar year to the smallest range
// that still covers the dataset's observed span.
func YearlyReport(events []event.Event, year int, bedCapacity int) (*report.Report, bool) {
	minDate, maxDate, ok := eventSpan(events)
	if !ok {
		return nil, false
	}

	start := firstOfMonth(year, time.January)
	end := lastOfMonth(year, time.December)
	if minDate.After(start) {
		start = minDate
	}
	if maxDate.Before(end) {
		end = maxDate
	}
	if start.After(end) {
		return nil, false
	}

	title := fmt.Sprintf("%d", year)
	return ReportForPeriod(events, title, start, end, bedCapacity)
}

// RangeReport covers the first day of startMonth through the last day of
// endMonth.
func RangeReport(events []event.Event, title string, startMonth, endMonth time.Time, bedCapacity int) (*report.Report, bool) {
	start := firstOfMonth(startMonth.Year(), startMonth.Month())
	end := lastOfMonth(endMonth.Year(), endMonth.Month())
	if end.Before(start) {
		return nil, false
	}
	return ReportForPeriod(events, title, start, end, bedCapacity)
}
