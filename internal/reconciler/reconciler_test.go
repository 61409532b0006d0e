package reconciler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dopazo/hhr-census/internal/event"
	"github.com/dopazo/hhr-census/internal/snapshot"
)

func day(y int, m time.Month, d int) time.Time {
	return snapshot.Normalize(time.Date(y, m, d, 0, 0, 0, 0, time.Local))
}

func mkSnap(rut string, date time.Time, status snapshot.Status) snapshot.Snapshot {
	return snapshot.New(date, rut, "Test Patient", "Dx", snapshot.BedTypeMedia, false, status, "test.xlsx")
}

func TestReconcile_ChileanBedDayRule(t *testing.T) {
	snaps := []snapshot.Snapshot{
		mkSnap("1-9", day(2025, time.January, 1), snapshot.StatusHospitalized),
		mkSnap("1-9", day(2025, time.January, 2), snapshot.StatusHospitalized),
		mkSnap("1-9", day(2025, time.January, 3), snapshot.StatusHospitalized),
		mkSnap("1-9", day(2025, time.January, 4), snapshot.StatusDischarged),
	}

	events := Reconcile(snaps)
	require.Len(t, events, 1)
	e := events[0]
	assert.True(t, e.FirstSeen.Equal(day(2025, time.January, 1)))
	require.NotNil(t, e.DischargeDate)
	assert.True(t, e.DischargeDate.Equal(day(2025, time.January, 4)))
	assert.Equal(t, event.StatusAlta, e.Status)
	assert.Equal(t, 3, e.LOS)
}

func TestReconcile_ImplicitDischargeFromGap(t *testing.T) {
	snaps := []snapshot.Snapshot{
		mkSnap("2-9", day(2025, time.January, 1), snapshot.StatusHospitalized),
		mkSnap("2-9", day(2025, time.January, 2), snapshot.StatusHospitalized),
		// Unrelated patient keeps data extending through Jan 10, making the
		// gap after Jan 2 a true coverage gap rather than end-of-data.
		mkSnap("9-0", day(2025, time.January, 10), snapshot.StatusHospitalized),
	}

	events := Reconcile(snaps)
	require.Len(t, events, 2)

	var target *event.Event
	for i := range events {
		if events[i].Identity == "2-9" {
			target = &events[i]
		}
	}
	require.NotNil(t, target)
	assert.Equal(t, event.StatusAlta, target.Status)
	require.NotNil(t, target.DischargeDate)
	assert.True(t, target.DischargeDate.Equal(day(2025, time.January, 3)))
	assert.Equal(t, 2, target.LOS)
}

// A single missing day (typically a weekend sheet nobody filled in) does
// not split the stay.
func TestReconcile_WeekendTolerance(t *testing.T) {
	snaps := []snapshot.Snapshot{
		mkSnap("3-9", day(2025, time.January, 1), snapshot.StatusHospitalized),
		mkSnap("3-9", day(2025, time.January, 3), snapshot.StatusHospitalized),
	}

	events := Reconcile(snaps)
	require.Len(t, events, 1)
	e := events[0]
	assert.Equal(t, event.StatusHospitalizado, e.Status)
	assert.True(t, e.LastSeen.Equal(day(2025, time.January, 3)))
}

// A discharge immediately contradicted by a new hospitalized row is a
// clerical error: the discharge is reverted and noted.
func TestReconcile_Resurrection(t *testing.T) {
	snaps := []snapshot.Snapshot{
		mkSnap("4-9", day(2025, time.January, 1), snapshot.StatusHospitalized),
		mkSnap("4-9", day(2025, time.January, 2), snapshot.StatusDischarged),
		mkSnap("4-9", day(2025, time.January, 3), snapshot.StatusHospitalized),
	}

	events := Reconcile(snaps)
	require.Len(t, events, 1)
	e := events[0]
	assert.Equal(t, event.StatusHospitalizado, e.Status)
	assert.Nil(t, e.DischargeDate)
	assert.Equal(t, 2, e.LOS)
	assert.NotEmpty(t, e.Inconsistencies)
}

func TestReconcile_WasEverUPCMonotonic(t *testing.T) {
	s1 := mkSnap("5-9", day(2025, time.January, 1), snapshot.StatusHospitalized)
	s1.IsUPC = true
	s2 := mkSnap("5-9", day(2025, time.January, 2), snapshot.StatusHospitalized)
	s2.IsUPC = false

	events := Reconcile([]snapshot.Snapshot{s1, s2})
	require.Len(t, events, 1)
	assert.True(t, events[0].WasEverUPC)
	assert.False(t, events[0].IsUPC)
}

func TestReconcile_SameDayConsolidation(t *testing.T) {
	s1 := mkSnap("6-9", day(2025, time.January, 1), snapshot.StatusHospitalized)
	s1.Diagnosis = "short"
	s2 := mkSnap("6-9", day(2025, time.January, 1), snapshot.StatusHospitalized)
	s2.Diagnosis = "much longer diagnosis text"

	events := Reconcile([]snapshot.Snapshot{s1, s2})
	require.Len(t, events, 1)
	assert.Equal(t, "much longer diagnosis text", events[0].Diagnosis)
	assert.Equal(t, 1, len(events[0].History))
}

func TestReconcile_IdentityByNameWhenRUTMissingElsewhere(t *testing.T) {
	withRUT := mkSnap("177777777", day(2025, time.January, 1), snapshot.StatusHospitalized)
	withRUT.Name = "Carlos Soto"
	withRUT.NormalizedName = snapshot.NormalizeName(withRUT.Name)

	noRUT := mkSnap("", day(2025, time.January, 2), snapshot.StatusHospitalized)
	noRUT.Name = "Carlos Soto"
	noRUT.NormalizedName = snapshot.NormalizeName(noRUT.Name)

	events := Reconcile([]snapshot.Snapshot{withRUT, noRUT})
	require.Len(t, events, 1)
	assert.Equal(t, "177777777", events[0].Identity)
}

func TestReconcile_IsDeterministicAcrossInputOrder(t *testing.T) {
	snaps := []snapshot.Snapshot{
		mkSnap("1-9", day(2025, time.January, 1), snapshot.StatusHospitalized),
		mkSnap("1-9", day(2025, time.January, 2), snapshot.StatusHospitalized),
		mkSnap("1-9", day(2025, time.January, 3), snapshot.StatusDischarged),
	}
	reversed := []snapshot.Snapshot{snaps[2], snaps[0], snaps[1]}

	a := Reconcile(snaps)
	b := Reconcile(reversed)
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, a[0].FirstSeen, b[0].FirstSeen)
	assert.Equal(t, a[0].DischargeDate, b[0].DischargeDate)
	assert.Equal(t, a[0].LOS, b[0].LOS)
}
