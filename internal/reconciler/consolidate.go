/*
FILE: internal/reconciler/consolidate.go

DESCRIPTION:
    Merges snapshots of the same identity that share a calendar date into
    one, before event segmentation ever sees them.
==============================================================================
*/
package reconciler

import "github.com/dopazo/hhr-census/internal/snapshot"

// consolidateSameDay merges adjacent same-date snapshots within one
// already-sorted, same-identity run. UPC latches true if any constituent was
// UPC; a non-Hospitalized status wins over Hospitalized; the longest
// diagnosis wins.
func consolidateSameDay(snaps []snapshot.Snapshot) []snapshot.Snapshot {
	if len(snaps) == 0 {
		return nil
	}
	out := make([]snapshot.Snapshot, 0, len(snaps))
	cur := snaps[0]
	for _, s := range snaps[1:] {
		if snapshot.SameDate(cur.Date, s.Date) {
			cur = mergeSameDay(cur, s)
			continue
		}
		out = append(out, cur)
		cur = s
	}
	out = append(out, cur)
	return out
}

func mergeSameDay(a, b snapshot.Snapshot) snapshot.Snapshot {
	merged := a
	merged.IsUPC = a.IsUPC || b.IsUPC
	if b.Status != snapshot.StatusHospitalized {
		merged.Status = b.Status
	}
	if len(b.Diagnosis) > len(merged.Diagnosis) {
		merged.Diagnosis = b.Diagnosis
	}
	if b.BedType != "" && b.BedType != snapshot.BedTypeIndefinido {
		merged.BedType = b.BedType
	}
	if merged.RUT == "" && b.RUT != "" {
		merged.RUT = b.RUT
	}
	return merged
}
