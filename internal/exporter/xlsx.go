/*
Package exporter - Report Export

==============================================================================
FILE: internal/exporter/xlsx.go
==============================================================================

DESCRIPTION:
    Writes a Report to the .xlsx export format: one sheet, one row per
    patient event, with the column set a caller (the UI layer) needs to
    hand to a human.

==============================================================================
*/
package exporter

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dopazo/hhr-census/internal/event"
	"github.com/dopazo/hhr-census/internal/report"
)

// reportColumns is the column set of the patient-detail export.
var reportColumns = []string{
	"RUT", "Nombre", "Edad", "Diagnóstico", "Tipo Cama Final",
	"Pasó por UPC", "Es UPC Actualmente", "Fecha Ingreso", "Fecha Egreso",
	"Fecha Última Vista", "Estado Final", "Estadía Total (Días)",
	"Días Cama Periodo", "Inconsistencias",
}

const dateFmt = "02-01-2006"

// WriteXLSX renders r's patients into one worksheet and returns the encoded
// workbook bytes.
func WriteXLSX(r *report.Report) ([]byte, error) {
	f := excelize.NewFile()
	sheetName := "Reporte"
	if idx, err := f.NewSheet(sheetName); err == nil {
		f.SetActiveSheet(idx)
	}
	f.DeleteSheet("Sheet1")

	for i, header := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheetName, cell, header)
	}

	for i, e := range r.Patients {
		row := i + 2
		values := rowValues(e)
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheetName, cell, v)
		}
	}

	for i := range reportColumns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx buffer: %w", err)
	}
	return buf.Bytes(), nil
}

// rowValues maps one Event to the export column order, exit date blank for
// still-open events.
func rowValues(e event.Event) []interface{} {
	exitDate := ""
	if exit := e.ExitDate(); exit != nil {
		exitDate = exit.Format(dateFmt)
	}
	return []interface{}{
		e.Identity,
		e.Name,
		"", // Edad: age is not carried through reconciliation; left blank.
		e.Diagnosis,
		e.BedType,
		boolToSiNo(e.WasEverUPC),
		boolToSiNo(e.IsUPC),
		e.FirstSeen.Format(dateFmt),
		exitDate,
		e.LastSeen.Format(dateFmt),
		e.Status.String(),
		e.LOS,
		e.DaysInPeriod,
		strings.Join(e.Inconsistencies, "; "),
	}
}

func boolToSiNo(b bool) string {
	if b {
		return "Si"
	}
	return "No"
}
