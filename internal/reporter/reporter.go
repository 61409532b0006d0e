/*
Package reporter - Period Report Generation

==============================================================================
FILE: internal/reporter/reporter.go
==============================================================================

DESCRIPTION:
    Given events and a [start, end] window, selects overlapping events,
    builds a dense-then-trimmed daily occupancy series applying the Chilean
    bed-day rule (discharge day excluded), and computes aggregate
    statistics.

==============================================================================
*/
package reporter

import (
	"math"
	"time"

	"github.com/dopazo/hhr-census/internal/event"
	"github.com/dopazo/hhr-census/internal/report"
	"github.com/dopazo/hhr-census/internal/snapshot"
)

// ReportForPeriod builds one report over [start, end]. It returns
// (nil, false) if no event overlaps the window.
func ReportForPeriod(events []event.Event, title string, start, end time.Time, bedCapacity int) (*report.Report, bool) {
	start = snapshot.Normalize(start)
	end = snapshot.Normalize(end)

	selected := selectEvents(events, start, end)
	if len(selected) == 0 {
		return nil, false
	}

	today := snapshot.Normalize(time.Now())
	clippedEnd := end
	if today.Before(clippedEnd) {
		clippedEnd = today
	}

	dailyStats, dates := buildDailyStats(selected, start, clippedEnd)

	r := &report.Report{
		Title:       title,
		StartDate:   start,
		EndDate:     end,
		Patients:    selected,
		Dates:       dates,
		DailyStats:  dailyStats,
		BedCapacity: bedCapacity,
	}
	computeAggregates(r, selected, start, end)
	return r, true
}

// selectEvents picks events where FirstSeen <= end and exit (discharge,
// else transfer, else still open) >= start. Returns deep copies so
// DaysInPeriod mutation never leaks across reports.
func selectEvents(events []event.Event, start, end time.Time) []event.Event {
	var out []event.Event
	for _, e := range events {
		if e.FirstSeen.After(end) {
			continue
		}
		exit := e.ExitDate()
		if exit != nil && exit.Before(start) {
			continue
		}
		clone := e.Clone()
		clone.DaysInPeriod = 0
		out = append(out, clone)
	}
	return out
}

// buildDailyStats fills a dense per-day series clipped at today, counting
// bed-days under the Chilean discharge-day-excluded rule, then trims
// trailing zero-movement days from the exported series.
func buildDailyStats(selected []event.Event, start, end time.Time) (map[string]report.DailyStats, []time.Time) {
	stats := map[string]report.DailyStats{}
	var dates []time.Time
	for d := start; !d.After(end); d = snapshot.Normalize(d.AddDate(0, 0, 1)) {
		dates = append(dates, d)
		stats[report.DateKey(d)] = report.DailyStats{}
	}

	for i := range selected {
		e := &selected[i]
		exit := e.ExitDate()

		if !e.FirstSeen.Before(start) && !e.FirstSeen.After(end) {
			s := stats[report.DateKey(e.FirstSeen)]
			s.Admissions++
			stats[report.DateKey(e.FirstSeen)] = s
		}

		if exit != nil && !exit.Before(start) && !exit.After(end) {
			s := stats[report.DateKey(*exit)]
			if e.Status == event.StatusTraslado {
				s.Transfers++
			} else {
				s.Discharges++
			}
			stats[report.DateKey(*exit)] = s
		}

		for _, d := range dates {
			occupied := !d.Before(e.FirstSeen)
			if exit != nil {
				occupied = occupied && d.Before(*exit)
			}
			if !occupied {
				continue
			}
			s := stats[report.DateKey(d)]
			s.TotalOccupancy++
			if e.IsUPC {
				s.UpcOccupancy++
			} else {
				s.NonUpcOccupancy++
			}
			stats[report.DateKey(d)] = s
			e.DaysInPeriod++
		}
	}

	dates = trimTrailingQuietDays(dates, stats)
	return stats, dates
}

// trimTrailingQuietDays drops trailing days with no occupancy and no
// admission/discharge movement from the exported series.
func trimTrailingQuietDays(dates []time.Time, stats map[string]report.DailyStats) []time.Time {
	end := len(dates)
	for end > 0 {
		s := stats[report.DateKey(dates[end-1])]
		if s.TotalOccupancy != 0 || s.Admissions != 0 || s.Discharges != 0 || s.Transfers != 0 {
			break
		}
		end--
	}
	return dates[:end]
}

// computeAggregates fills the report's window-level counters.
func computeAggregates(r *report.Report, selected []event.Event, start, end time.Time) {
	upcSeen := map[string]bool{}
	var losSum, losCount int

	for _, e := range selected {
		if !e.FirstSeen.Before(start) && !e.FirstSeen.After(end) {
			r.TotalAdmissions++
		}
		if e.WasEverUPC {
			upcSeen[e.Identity] = true
		}
		if exit := e.ExitDate(); exit != nil && !exit.Before(start) && !exit.After(end) {
			losSum += e.LOS
			losCount++
		}
	}

	for _, d := range r.Dates {
		s := r.DailyStats[report.DateKey(d)]
		r.TotalDischarges += s.Discharges
	}

	r.TotalUpcPatients = len(upcSeen)
	if losCount > 0 {
		r.AvgLOS = math.Round(float64(losSum)/float64(losCount)*10) / 10
	}
	if r.BedCapacity > 0 && len(r.Dates) > 0 {
		var occSum int
		for _, d := range r.Dates {
			occSum += r.DailyStats[report.DateKey(d)].TotalOccupancy
		}
		r.OccupancyRate = math.Round(float64(occSum)/float64(len(r.Dates))/float64(r.BedCapacity)*1000) / 1000
	}
}
