/*
Package render - CLI Output Rendering

==============================================================================
FILE: internal/render/render.go
==============================================================================

DESCRIPTION:
    Converts a Report into human-readable (table) or machine-parseable
    (json) terminal output for cmd/census.

==============================================================================
*/
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/dopazo/hhr-census/internal/report"
)

// Format constants matching the --format CLI flag values.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Report writes r to w in the requested format. An unrecognized format
// falls back to table.
func Report(w io.Writer, r *report.Report, format string) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, r)
	default:
		return renderTable(w, r)
	}
}

func renderJSON(w io.Writer, r *report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func renderTable(w io.Writer, r *report.Report) error {
	fmt.Fprintf(w, "%s  (%s - %s)\n", r.Title, r.StartDate.Format("2006-01-02"), r.EndDate.Format("2006-01-02"))
	fmt.Fprintf(w, "Admissions: %d   Discharges: %d   UPC patients: %d   Avg LOS: %.1f\n\n",
		r.TotalAdmissions, r.TotalDischarges, r.TotalUpcPatients, r.AvgLOS)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", "Occupancy", "UPC", "Non-UPC", "Admissions", "Discharges", "Transfers"})
	for _, d := range r.Dates {
		s := r.DailyStats[report.DateKey(d)]
		table.Append([]string{
			d.Format("2006-01-02"),
			fmt.Sprintf("%d", s.TotalOccupancy),
			fmt.Sprintf("%d", s.UpcOccupancy),
			fmt.Sprintf("%d", s.NonUpcOccupancy),
			fmt.Sprintf("%d", s.Admissions),
			fmt.Sprintf("%d", s.Discharges),
			fmt.Sprintf("%d", s.Transfers),
		})
	}
	table.Render()
	return nil
}

// Patients renders a Report's patient events as a table.
func Patients(w io.Writer, r *report.Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Identity", "Name", "Status", "First Seen", "Last Seen", "LOS", "Days in Period", "UPC"})
	for _, e := range r.Patients {
		table.Append([]string{
			e.Identity,
			e.Name,
			e.Status.String(),
			e.FirstSeen.Format("2006-01-02"),
			e.LastSeen.Format("2006-01-02"),
			fmt.Sprintf("%d", e.LOS),
			fmt.Sprintf("%d", e.DaysInPeriod),
			fmt.Sprintf("%v", e.WasEverUPC),
		})
	}
	table.Render()
}
