/*
FILE: internal/reconciler/segment.go

DESCRIPTION:
    The per-identity timeline state machine: turns a sorted,
    same-day-consolidated snapshot run into one or more Events, including
    implicit-discharge-on-gap and discharge-resurrection-on-reappearance,
    and finalization against the dataset's global max observation date.
==============================================================================
*/
package reconciler

import (
	"fmt"
	"time"

	"github.com/dopazo/hhr-census/internal/event"
	"github.com/dopazo/hhr-census/internal/snapshot"
)

// segmentGroup folds one identity's sorted, consolidated snapshots into
// events, then finalizes the last one against globalMaxDate.
func segmentGroup(identity string, snaps []snapshot.Snapshot, globalMaxDate time.Time) []event.Event {
	if len(snaps) == 0 {
		return nil
	}

	var closedEvents []event.Event
	var cur *event.Event

	for _, s := range snaps {
		if cur == nil {
			cur = openEvent(identity, s)
			continue
		}

		gapDays := int(snapshot.EpochDay(s.Date)-snapshot.EpochDay(cur.LastSeen)) - 1
		if gapDays > 1 {
			// An event already closed by an explicit discharge/transfer keeps
			// its own exit; only a still-open one gets the implicit discharge.
			if cur.ExitDate() == nil {
				closeImplicit(cur)
			}
			closedEvents = append(closedEvents, *cur)
			cur = openEvent(identity, s)
			cur.Inconsistencies = append(cur.Inconsistencies,
				fmt.Sprintf("same identity appears in two non-adjacent windows (%d-day coverage gap before %s)",
					gapDays, s.Date.Format("2006-01-02")))
			continue
		}

		wasClosed := cur.ExitDate() != nil
		if wasClosed {
			note := fmt.Sprintf("explicit discharge on %s reverted: patient reappeared on %s",
				cur.ExitDate().Format("2006-01-02"), s.Date.Format("2006-01-02"))
			cur.Inconsistencies = append(cur.Inconsistencies, note)
			cur.DischargeDate = nil
			cur.TransferDate = nil
			cur.Status = event.StatusHospitalizado
		}

		advanceEvent(cur, s)
	}

	if cur != nil {
		finalize(cur, globalMaxDate)
		closedEvents = append(closedEvents, *cur)
	}

	return closedEvents
}

// openEvent anchors a new event at s. If s itself reports a discharge or
// transfer, the event is born already closed, with los=1.
func openEvent(identity string, s snapshot.Snapshot) *event.Event {
	e := &event.Event{
		Identity:   identity,
		Name:       s.Name,
		FirstSeen:  s.Date,
		LastSeen:   s.Date,
		Status:     event.StatusHospitalizado,
		IsUPC:      s.IsUPC,
		WasEverUPC: s.IsUPC,
		Diagnosis:  s.Diagnosis,
		BedType:    string(s.BedType),
		History:    []time.Time{s.Date},
		LOS:        1,
	}
	stampExitIfAny(e, s)
	return e
}

// advanceEvent folds one more snapshot into an already-open event.
func advanceEvent(e *event.Event, s snapshot.Snapshot) {
	e.LastSeen = s.Date
	e.History = append(e.History, s.Date)
	if s.Name != "" {
		e.Name = s.Name
	}
	if s.BedType != "" && s.BedType != snapshot.BedTypeIndefinido {
		e.BedType = string(s.BedType)
	}
	e.IsUPC = s.IsUPC
	if s.IsUPC {
		e.WasEverUPC = true
	}
	if len(s.Diagnosis) > len(e.Diagnosis) {
		e.Diagnosis = s.Diagnosis
	}
	stampExitIfAny(e, s)
	e.LOS = lengthOfStay(e)
}

// stampExitIfAny closes e if s itself is a Discharged/Transferred row.
func stampExitIfAny(e *event.Event, s snapshot.Snapshot) {
	switch s.Status {
	case snapshot.StatusDischarged:
		d := s.Date
		e.DischargeDate = &d
		e.Status = event.StatusAlta
		e.LOS = lengthOfStay(e)
	case snapshot.StatusTransferred:
		d := s.Date
		e.TransferDate = &d
		e.Status = event.StatusTraslado
		e.LOS = lengthOfStay(e)
	}
}

// closeImplicit closes e on a coverage gap: discharge the day after the
// last observed day.
func closeImplicit(e *event.Event) {
	d := snapshot.Normalize(e.LastSeen.AddDate(0, 0, 1))
	e.DischargeDate = &d
	e.Status = event.StatusAlta
	e.LOS = lengthOfStay(e)
}

// finalize runs after a group's last snapshot: a still-Hospitalized event
// is left open only if its last observation is the dataset's global max
// date (patient still admitted at end of data); otherwise it is implicitly
// discharged the day after.
func finalize(e *event.Event, globalMaxDate time.Time) {
	if e.Status != event.StatusHospitalizado {
		return
	}
	if snapshot.SameDate(e.LastSeen, globalMaxDate) {
		return
	}
	closeImplicit(e)
}

// lengthOfStay counts bed-days exclusive of the exit day, floored at 1 for
// any event with at least one observed day.
func lengthOfStay(e *event.Event) int {
	end := e.LastSeen
	if exit := e.ExitDate(); exit != nil {
		end = *exit
	}
	days := int(snapshot.EpochDay(end) - snapshot.EpochDay(e.FirstSeen))
	if days < 1 {
		days = 1
	}
	return days
}
