package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dopazo/hhr-census/internal/event"
	"github.com/dopazo/hhr-census/internal/report"
)

func sampleReport() *report.Report {
	day := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.Local)
	return &report.Report{
		Title:           "Enero 2025",
		StartDate:       day,
		EndDate:         day,
		Dates:           []time.Time{day},
		DailyStats:      map[string]report.DailyStats{report.DateKey(day): {TotalOccupancy: 2}},
		TotalAdmissions: 1,
		Patients:        []event.Event{{Identity: "1-9", Name: "Juan Perez", Status: event.StatusHospitalizado}},
	}
}

func TestReport_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report(&buf, sampleReport(), FormatTable))
	assert.Contains(t, buf.String(), "Enero 2025")
	assert.Contains(t, buf.String(), "2025-01-01")
}

func TestReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report(&buf, sampleReport(), FormatJSON))
	assert.Contains(t, buf.String(), "\"Title\": \"Enero 2025\"")
}

func TestPatients_Table(t *testing.T) {
	var buf bytes.Buffer
	Patients(&buf, sampleReport())
	assert.Contains(t, buf.String(), "Juan Perez")
}
