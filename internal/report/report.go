/*
Package report - Period Reports

==============================================================================
FILE: internal/report/report.go
==============================================================================

DESCRIPTION:
    Defines the Reporter's output: a Report over one [start, end] window,
    with a dense-then-trimmed daily occupancy/movement series and aggregate
    length-of-stay statistics.

==============================================================================
*/
package report

import (
	"time"

	"github.com/dopazo/hhr-census/internal/event"
)

// DailyStats is the occupancy/movement count for one calendar day.
type DailyStats struct {
	TotalOccupancy  int
	UpcOccupancy    int
	NonUpcOccupancy int
	Admissions      int
	Discharges      int
	Transfers       int
}

// Report is the result of applying the Reporter to a window of events.
type Report struct {
	Title     string
	StartDate time.Time
	EndDate   time.Time

	// Patients holds deep copies of the events overlapping the window;
	// DaysInPeriod on each is set by the Reporter for this window only.
	Patients []event.Event

	// Dates is the ordered, trailing-zero-trimmed list of days covered by
	// DailyStats. A day present here has a DailyStats entry; it will not
	// necessarily cover the whole [StartDate, EndDate] range.
	Dates      []time.Time
	DailyStats map[string]DailyStats // keyed by "2006-01-02"

	TotalAdmissions  int
	TotalDischarges  int
	TotalUpcPatients int
	AvgLOS           float64

	// OccupancyRate is zero unless BedCapacity was supplied to the Reporter;
	// there is no intrinsic denominator without a configured capacity.
	OccupancyRate float64
	BedCapacity   int
}

const dateKeyLayout = "2006-01-02"

// DateKey formats a date the way Report.DailyStats keys it.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// StatsFor returns the daily stats for a date, or the zero value if the day
// was trimmed (no movement, off the end of the series) or outside the window.
func (r *Report) StatsFor(t time.Time) DailyStats {
	return r.DailyStats[DateKey(t)]
}
