/*
FILE: internal/exporter/pdf.go

DESCRIPTION:
    One-page PDF census summary per report: a header band, the aggregate
    counters, and a compact daily-occupancy table.
==============================================================================
*/
package exporter

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/dopazo/hhr-census/internal/report"
)

// WritePDF renders a one-page summary of r: title band, aggregate counters,
// and a daily occupancy table capped at the page's available rows.
func WritePDF(r *report.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFillColor(30, 90, 130)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 16)
	pdf.SetXY(10, 8)
	pdf.Cell(150, 8, "CENSO DE CAMAS - RESUMEN")
	pdf.SetFont("Arial", "", 10)
	pdf.SetXY(10, 18)
	pdf.Cell(150, 6, r.Title)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(10, 34)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(70, 130, 180)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(190, 7, "INDICADORES DEL PERIODO", "1", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 9)

	y := pdf.GetY() + 2
	for _, line := range []string{
		fmt.Sprintf("Ingresos totales: %d", r.TotalAdmissions),
		fmt.Sprintf("Egresos totales: %d", r.TotalDischarges),
		fmt.Sprintf("Pacientes UPC: %d", r.TotalUpcPatients),
		fmt.Sprintf("Estadia promedio: %.1f dias", r.AvgLOS),
	} {
		pdf.SetXY(10, y)
		pdf.Cell(95, 5, line)
		y += 6
	}

	y += 4
	pdf.SetXY(10, y)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(70, 130, 180)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(190, 7, "OCUPACION DIARIA", "1", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	y = pdf.GetY()

	pdf.SetFont("Arial", "B", 8)
	pdf.SetXY(10, y)
	for _, h := range []struct {
		w     float64
		label string
	}{{30, "Fecha"}, {30, "Ocupacion"}, {30, "UPC"}, {30, "Ingresos"}, {30, "Egresos"}} {
		pdf.CellFormat(h.w, 6, h.label, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	const maxRows = 31 // one page's worth; longer windows are better served by the xlsx export
	for i, d := range r.Dates {
		if i >= maxRows {
			break
		}
		s := r.DailyStats[report.DateKey(d)]
		pdf.SetX(10)
		pdf.CellFormat(30, 6, d.Format("02-01-2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", s.TotalOccupancy), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", s.UpcOccupancy), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", s.Admissions), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", s.Discharges), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
