package exporter

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dopazo/hhr-census/internal/event"
	"github.com/dopazo/hhr-census/internal/report"
)

func sampleReport() *report.Report {
	discharge := time.Date(2025, time.January, 4, 12, 0, 0, 0, time.Local)
	return &report.Report{
		Title:     "Enero 2025",
		StartDate: time.Date(2025, time.January, 1, 12, 0, 0, 0, time.Local),
		EndDate:   time.Date(2025, time.January, 31, 12, 0, 0, 0, time.Local),
		Patients: []event.Event{
			{
				Identity:      "1-9",
				Name:          "Juan Perez",
				FirstSeen:     time.Date(2025, time.January, 1, 12, 0, 0, 0, time.Local),
				LastSeen:      time.Date(2025, time.January, 3, 12, 0, 0, 0, time.Local),
				DischargeDate: &discharge,
				Status:        event.StatusAlta,
				Diagnosis:     "Neumonia",
				BedType:       "MEDIA",
				LOS:           3,
				DaysInPeriod:  3,
			},
		},
		Dates: []time.Time{time.Date(2025, time.January, 1, 12, 0, 0, 0, time.Local)},
		DailyStats: map[string]report.DailyStats{
			"2025-01-01": {TotalOccupancy: 1, Admissions: 1},
		},
		TotalAdmissions: 1,
		TotalDischarges: 1,
		AvgLOS:          3,
	}
}

func TestWriteXLSX_HeaderAndRow(t *testing.T) {
	data, err := WriteXLSX(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Reporte")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "RUT", rows[0][0])
	assert.Equal(t, "1-9", rows[1][0])
	assert.Equal(t, "Juan Perez", rows[1][1])
}

func TestWritePDF_ProducesNonEmptyDocument(t *testing.T) {
	data, err := WritePDF(sampleReport())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
