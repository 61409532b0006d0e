/*
FILE: internal/extractor/rows.go

DESCRIPTION:
    Walks one worksheet's rows top to bottom, tracking the current block
    (Hospitalized/Discharged/Transferred) marker and a fuzzy-matched column
    map, filtering noise rows, and emitting Snapshots for the date the sheet
    was already resolved to.
==============================================================================
*/
package extractor

import (
	"strings"
	"time"

	"github.com/dopazo/hhr-census/internal/snapshot"
	"github.com/dopazo/hhr-census/internal/xlsxio"
)

type block int

const (
	blockNone block = iota
	blockHospitalized
	blockDischarged
	blockTransferred
)

func (b block) status() snapshot.Status {
	switch b {
	case blockDischarged:
		return snapshot.StatusDischarged
	case blockTransferred:
		return snapshot.StatusTransferred
	default:
		return snapshot.StatusHospitalized
	}
}

// maxMarkerRowLen bounds how long a block-marker row can be: section titles
// like "ALTAS DEL DIA" are short, while a patient row whose diagnosis
// happens to mention a traslado is not.
const maxMarkerRowLen = 200

// detectBlockMarker reports the block a short row announces, if any. "ALTAS"
// inside a negation ("NO ALTAS") does not count.
func detectBlockMarker(joined string) (block, bool) {
	if len(joined) >= maxMarkerRowLen {
		return blockNone, false
	}
	switch {
	case strings.Contains(joined, "ALTAS") && !strings.Contains(joined, "NO"):
		return blockDischarged, true
	case strings.Contains(joined, "TRASLAD") || strings.Contains(joined, "DERIVADO"):
		return blockTransferred, true
	default:
		return blockNone, false
	}
}

// column indexes the fields a header row can be fuzzy-matched to.
type column int

const (
	colRUT column = iota
	colName
	colAge
	colBedType
	colUPC
	colDiagnosis
	columnCount
)

type columnMap [columnCount]int

func newColumnMap() columnMap {
	var cm columnMap
	for i := range cm {
		cm[i] = -1
	}
	return cm
}

func cellText(row []xlsxio.Cell, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx].Text
}

func joinUpper(row []xlsxio.Cell) string {
	parts := make([]string, len(row))
	for i := range row {
		parts[i] = strings.ToUpper(strings.TrimSpace(cellText(row, i)))
	}
	return strings.Join(parts, " ")
}

// isHeaderRow: a row qualifies as a header if its joined uppercase text
// contains (RUT and (a patient-name token or a diagnosis token)), or (CAMA
// and a patient-name token).
func isHeaderRow(joined string) bool {
	hasRUT := strings.Contains(joined, "RUT")
	hasName := strings.Contains(joined, "PACIENTE") || strings.Contains(joined, "NOMBRE")
	hasDiag := strings.Contains(joined, "PATOLOGIA") || strings.Contains(joined, "PATOLOGÍA") ||
		strings.Contains(joined, "DIAGNOSTICO") || strings.Contains(joined, "DIAG")
	hasCama := strings.Contains(joined, "CAMA")
	return (hasRUT && (hasName || hasDiag)) || (hasCama && hasName)
}

// buildColumnMap resolves semantic columns by first-wins substring matching
// against each header cell.
func buildColumnMap(row []xlsxio.Cell) columnMap {
	cm := newColumnMap()
	for i := range row {
		text := strings.ToUpper(strings.TrimSpace(cellText(row, i)))
		if text == "" {
			continue
		}
		if cm[colRUT] == -1 && strings.Contains(text, "RUT") {
			cm[colRUT] = i
		}
		if cm[colName] == -1 && (strings.Contains(text, "PACIENTE") || strings.Contains(text, "NOMBRE")) {
			cm[colName] = i
		}
		if cm[colAge] == -1 && strings.Contains(text, "EDAD") {
			cm[colAge] = i
		}
		if cm[colBedType] == -1 && strings.Contains(text, "TIPO") {
			cm[colBedType] = i
		}
		if cm[colUPC] == -1 && strings.Contains(text, "UPC") {
			cm[colUPC] = i
		}
		if cm[colDiagnosis] == -1 && (strings.Contains(text, "PATOLOGIA") || strings.Contains(text, "PATOLOGÍA") ||
			strings.Contains(text, "DIAGNOSTICO") || text == "DIAG" || text == "DG" || text == "DIAG.") {
			cm[colDiagnosis] = i
		}
	}
	return cm
}

// isGhostHeaderRow catches a second, column-less header echo that slipped
// past isHeaderRow because the rest of the row is blank.
func isGhostHeaderRow(nameUpper, idUpper string) bool {
	switch nameUpper {
	case "NOMBRE", "PACIENTE", "NOMBRE PACIENTE":
		return true
	}
	return idUpper == "RUT" || idUpper == "RUN"
}

// isNoiseRow catches section titles and blocked-bed placeholders that
// otherwise look like data rows.
func isNoiseRow(nameUpper string) bool {
	switch {
	case strings.HasPrefix(nameUpper, "BLOQUEO"):
		return true
	case strings.Contains(nameUpper, "AISLAMIENTO"):
		return true
	case strings.Contains(nameUpper, "SERVICIO DE"):
		return true
	case strings.Contains(nameUpper, "UNIDAD DE"):
		return true
	case nameUpper == "CAMA" || nameUpper == "TIPO DE CAMA" || nameUpper == "TOTAL":
		return true
	default:
		return false
	}
}

// decodeSheet walks one worksheet (already resolved to a single calendar
// date) and emits a Snapshot per surviving patient row.
func decodeSheet(rows [][]xlsxio.Cell, date time.Time, sourceFile string) []snapshot.Snapshot {
	var out []snapshot.Snapshot

	cur := blockHospitalized // default block until a marker says otherwise
	cm := newColumnMap()
	headerSeen := false

	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		joined := joinUpper(row)
		if strings.TrimSpace(joined) == "" {
			continue
		}

		if marker, ok := detectBlockMarker(joined); ok {
			cur = marker
			continue
		}

		if isHeaderRow(joined) {
			if !headerSeen {
				// The first header marks the start of the Hospitalized table.
				cur = blockHospitalized
				headerSeen = true
			}
			cm = buildColumnMap(row)
			continue
		}

		if !headerSeen || len(row) <= 2 {
			continue
		}

		nameRaw := cellText(row, cm[colName])
		idRaw := cellText(row, cm[colRUT])
		nameUpper := strings.ToUpper(strings.TrimSpace(nameRaw))
		idUpper := strings.ToUpper(strings.TrimSpace(idRaw))

		if nameUpper == "" {
			continue
		}
		if isGhostHeaderRow(nameUpper, idUpper) {
			continue
		}
		if isNoiseRow(nameUpper) {
			continue
		}

		rut := snapshot.NormalizeRUT(idRaw)
		normalizedName := snapshot.NormalizeName(nameRaw)
		if snapshot.IsBlockedPlaceholder(normalizedName) {
			continue
		}

		diagnosis := strings.TrimSpace(cellText(row, cm[colDiagnosis]))
		if rut == "" && diagnosis == "" {
			// No identifier and no clinical content: not a patient row.
			continue
		}

		bedType := snapshot.NormalizeBedType(cellText(row, cm[colBedType]))
		isUPC := snapshot.ParseUPCFlag(cellText(row, cm[colUPC])) || bedType == snapshot.BedTypeUPC ||
			bedType == snapshot.BedTypeUCI || bedType == snapshot.BedTypeUTI

		out = append(out, snapshot.New(date, rut, strings.TrimSpace(nameRaw), diagnosis, bedType, isUPC, cur.status(), sourceFile))
	}

	return out
}
