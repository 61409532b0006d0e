/*
Package snapshot - Patient-Day Observations

==============================================================================
FILE: internal/snapshot/snapshot.go
==============================================================================

DESCRIPTION:
    Defines Snapshot, the unit of data the Extractor produces: one observation
    of one patient on one calendar day, read off a single worksheet row.

==============================================================================
*/
package snapshot

import "time"

// Status is the block of the worksheet a row was read from.
type Status int

const (
	StatusHospitalized Status = iota
	StatusDischarged
	StatusTransferred
)

func (s Status) String() string {
	switch s {
	case StatusHospitalized:
		return "Hospitalizado"
	case StatusDischarged:
		return "Alta"
	case StatusTransferred:
		return "Traslado"
	default:
		return "Desconocido"
	}
}

// BedType is a normalized token, usually one of the constants below. Blank
// cells normalize to BedTypeIndefinido; a value outside this set is kept as
// its trimmed, uppercased text rather than being rejected.
type BedType string

const (
	BedTypeMedia      BedType = "MEDIA"
	BedTypeUTI        BedType = "UTI"
	BedTypeUCI        BedType = "UCI"
	BedTypeUPC        BedType = "UPC"
	BedTypeCMA        BedType = "CMA"
	BedTypePensionado BedType = "PENSIONADO"
	BedTypeCirugia    BedType = "CIRUGIA"
	BedTypeMaternidad BedType = "MATERNIDAD"
	BedTypePediatria  BedType = "PEDIATRIA"
	BedTypeIndefinido BedType = "INDEFINIDO"
)

// Snapshot is one patient-day observation.
//
// Invariant: either RUT or NormalizedName is non-empty. Blocked-bed
// placeholder rows (BLOQUEO/AISLAMIENTO) never reach this type; they are
// filtered by the extractor before construction.
type Snapshot struct {
	Date           time.Time // normalized to 12:00:00 local
	RUT            string    // cleaned national identifier, may be empty
	Name           string    // original-cased, for display
	NormalizedName string    // accent-stripped, uppercase, letters+space only
	Diagnosis      string
	BedType        BedType
	IsUPC          bool
	Status         Status
	SourceFile     string
}

// New builds a Snapshot, deriving NormalizedName from name.
func New(date time.Time, rut, name, diagnosis string, bedType BedType, isUPC bool, status Status, sourceFile string) Snapshot {
	return Snapshot{
		Date:           Normalize(date),
		RUT:            rut,
		Name:           name,
		NormalizedName: NormalizeName(name),
		Diagnosis:      diagnosis,
		BedType:        bedType,
		IsUPC:          isUPC,
		Status:         status,
		SourceFile:     sourceFile,
	}
}

// Normalize pins a date at noon local time so date equality is stable across
// DST transitions and midnight-rounding noise from spreadsheet serials.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, t.Location())
}

// EpochDay returns a DST-proof integer day number for date arithmetic:
// timezone and wall-clock are dropped, only the calendar date matters.
func EpochDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return EpochDay(a) == EpochDay(b)
}
