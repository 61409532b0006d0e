package reporter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dopazo/hhr-census/internal/event"
	"github.com/dopazo/hhr-census/internal/snapshot"
)

func d(y int, m time.Month, day int) time.Time {
	return snapshot.Normalize(time.Date(y, m, day, 0, 0, 0, 0, time.Local))
}

func ptr(t time.Time) *time.Time { return &t }

func TestReportForPeriod_NoOverlapReturnsFalse(t *testing.T) {
	events := []event.Event{
		{Identity: "1", FirstSeen: d(2025, time.January, 1), LastSeen: d(2025, time.January, 5), DischargeDate: ptr(d(2025, time.January, 6)), Status: event.StatusAlta},
	}
	_, ok := ReportForPeriod(events, "March", d(2025, time.March, 1), d(2025, time.March, 31), 0)
	assert.False(t, ok)
}

// The discharge day is not a bed day: an event discharged on Jan 4
// occupies Jan 1-3 only.
func TestReportForPeriod_ChileanBedDayExclusion(t *testing.T) {
	events := []event.Event{
		{
			Identity:      "1-9",
			FirstSeen:     d(2025, time.January, 1),
			LastSeen:      d(2025, time.January, 3),
			DischargeDate: ptr(d(2025, time.January, 4)),
			Status:        event.StatusAlta,
			LOS:           3,
		},
	}

	r, ok := ReportForPeriod(events, "January", d(2025, time.January, 1), d(2025, time.January, 10), 0)
	require.True(t, ok)

	assert.Equal(t, 1, r.StatsFor(d(2025, time.January, 1)).TotalOccupancy)
	assert.Equal(t, 1, r.StatsFor(d(2025, time.January, 3)).TotalOccupancy)
	assert.Equal(t, 0, r.StatsFor(d(2025, time.January, 4)).TotalOccupancy)
	assert.Equal(t, 1, r.StatsFor(d(2025, time.January, 4)).Discharges)
	assert.Equal(t, 1, r.TotalDischarges)
}

func TestReportForPeriod_AdmissionsCountedOnce(t *testing.T) {
	events := []event.Event{
		{Identity: "1", FirstSeen: d(2025, time.January, 5), LastSeen: d(2025, time.January, 6), Status: event.StatusHospitalizado},
		{Identity: "2", FirstSeen: d(2025, time.January, 5), LastSeen: d(2025, time.January, 6), Status: event.StatusHospitalizado},
	}
	r, ok := ReportForPeriod(events, "January", d(2025, time.January, 1), d(2025, time.January, 6), 0)
	require.True(t, ok)
	assert.Equal(t, 2, r.TotalAdmissions)
	assert.Equal(t, 2, r.StatsFor(d(2025, time.January, 5)).Admissions)
}

func TestReportForPeriod_TransfersExcludedFromDischargeTotal(t *testing.T) {
	events := []event.Event{
		{
			Identity:     "1",
			FirstSeen:    d(2025, time.January, 1),
			LastSeen:     d(2025, time.January, 2),
			TransferDate: ptr(d(2025, time.January, 3)),
			Status:       event.StatusTraslado,
			LOS:          2,
		},
	}
	r, ok := ReportForPeriod(events, "January", d(2025, time.January, 1), d(2025, time.January, 10), 0)
	require.True(t, ok)
	assert.Equal(t, 0, r.TotalDischarges)
	assert.Equal(t, 1, r.StatsFor(d(2025, time.January, 3)).Transfers)
}

func TestReportForPeriod_AvgLOSOnlyCountsEventsEndingInWindow(t *testing.T) {
	events := []event.Event{
		{Identity: "1", FirstSeen: d(2025, time.January, 1), LastSeen: d(2025, time.January, 3), DischargeDate: ptr(d(2025, time.January, 4)), Status: event.StatusAlta, LOS: 3},
		{Identity: "2", FirstSeen: d(2025, time.January, 1), LastSeen: d(2025, time.January, 31), Status: event.StatusHospitalizado, LOS: 30},
	}
	r, ok := ReportForPeriod(events, "January", d(2025, time.January, 1), d(2025, time.January, 31), 0)
	require.True(t, ok)
	assert.Equal(t, 3.0, r.AvgLOS)
}

func TestReportForPeriod_ReportsAreIndependent(t *testing.T) {
	events := []event.Event{
		{Identity: "1", FirstSeen: d(2025, time.January, 1), LastSeen: d(2025, time.January, 31), Status: event.StatusHospitalizado, LOS: 30},
	}
	r1, ok1 := ReportForPeriod(events, "A", d(2025, time.January, 1), d(2025, time.January, 10), 0)
	r2, ok2 := ReportForPeriod(events, "B", d(2025, time.January, 1), d(2025, time.January, 31), 0)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.NotEqual(t, r1.Patients[0].DaysInPeriod, r2.Patients[0].DaysInPeriod)
}

func TestMonthlyReports_CapsAtMostRecent(t *testing.T) {
	var events []event.Event
	for m := 1; m <= 40; m++ {
		events = append(events, event.Event{
			Identity:  "p",
			FirstSeen: d(2020, time.Month((m-1)%12+1), 1),
			LastSeen:  d(2020, time.Month((m-1)%12+1), 2),
			Status:    event.StatusHospitalizado,
		})
	}
	reports := MonthlyReports(events, 5, 0)
	assert.LessOrEqual(t, len(reports), 5)
	require.Len(t, reports, 5)
	assert.Equal(t, "Agosto 2020", reports[0].Title)
	assert.Equal(t, "Diciembre 2020", reports[4].Title)
}

func TestQuarterlyReport_SpansThreeMonths(t *testing.T) {
	events := []event.Event{
		{Identity: "1", FirstSeen: d(2025, time.February, 10), LastSeen: d(2025, time.February, 20), Status: event.StatusHospitalizado},
	}
	r, ok := QuarterlyReport(events, 2025, 1, 0)
	require.True(t, ok)
	assert.True(t, r.StartDate.Equal(d(2025, time.January, 1)))
	assert.True(t, r.EndDate.Equal(d(2025, time.March, 31)))
}

func TestRangeReport_RejectsEmptyOverlap(t *testing.T) {
	events := []event.Event{
		{Identity: "1", FirstSeen: d(2025, time.January, 1), LastSeen: d(2025, time.January, 2), Status: event.StatusHospitalizado},
	}
	_, ok := RangeReport(events, "bad", d(2025, time.June, 1), d(2025, time.March, 1), 0)
	assert.False(t, ok)
}
