/*
Package reconciler - Snapshot-to-Event Reconciliation

==============================================================================
FILE: internal/reconciler/reconciler.go
==============================================================================

DESCRIPTION:
    Public entry point for the pipeline's second stage: groups a flat list of
    Snapshots into patient identities, consolidates same-day duplicates, and
    segments each identity's timeline into Events.

==============================================================================
*/
package reconciler

import (
	"sort"

	"github.com/dopazo/hhr-census/internal/event"
	"github.com/dopazo/hhr-census/internal/snapshot"
)

// Reconcile turns a flat snapshot stream, drawn from any number of
// workbooks, into a slice of Events. It never fails: clerical
// inconsistencies are recorded on the affected Event instead.
func Reconcile(snaps []snapshot.Snapshot) []event.Event {
	if len(snaps) == 0 {
		return nil
	}

	sorted := make([]snapshot.Snapshot, len(snaps))
	copy(sorted, snaps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	globalMaxDate := sorted[len(sorted)-1].Date

	keys := resolveIdentities(sorted)

	groups := map[string][]snapshot.Snapshot{}
	var order []string
	for i, s := range sorted {
		k := keys[i]
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], s)
	}

	var events []event.Event
	for _, k := range order {
		consolidated := consolidateSameDay(groups[k])
		events = append(events, segmentGroup(k, consolidated, globalMaxDate)...)
	}

	return events
}
