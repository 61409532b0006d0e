/*
Package reconciler - Snapshot-to-Event Reconciliation

==============================================================================
FILE: internal/reconciler/identity.go
==============================================================================

DESCRIPTION:
    Resolves a stable grouping key for every snapshot, preferring RUT,
    falling back to a name-derived key learned from any snapshot of the same
    normalized name that did carry a plausible RUT.

==============================================================================
*/
package reconciler

import "github.com/dopazo/hhr-census/internal/snapshot"

const minPlausibleRUTLen = 3

// resolveIdentities builds a name->RUT map from every snapshot with a
// plausible RUT, then assigns each snapshot a grouping key: its own RUT, or
// the RUT learned for its normalized name (back-filling snapshot.RUT so
// identity is stable downstream), or a synthetic name-derived key.
//
// snaps is sorted by date ascending by the caller before this runs; the
// name->RUT map is built in one full pass before any key is assigned, so
// the result does not depend on processing order.
func resolveIdentities(snaps []snapshot.Snapshot) []string {
	nameToRUT := map[string]string{}
	for _, s := range snaps {
		if len(s.RUT) > minPlausibleRUTLen && s.NormalizedName != "" {
			if _, ok := nameToRUT[s.NormalizedName]; !ok {
				nameToRUT[s.NormalizedName] = s.RUT
			}
		}
	}

	keys := make([]string, len(snaps))
	for i := range snaps {
		s := &snaps[i]
		switch {
		case s.RUT != "":
			keys[i] = s.RUT
		case s.NormalizedName != "" && nameToRUT[s.NormalizedName] != "":
			s.RUT = nameToRUT[s.NormalizedName]
			keys[i] = s.RUT
		default:
			keys[i] = "NAME-" + s.NormalizedName
		}
	}
	return keys
}
