package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addRange(t *testing.T, d *DaySchedule, start, end int) Interval {
	t.Helper()
	candidate, err := NewInterval(start, end)
	require.NoError(t, err)
	iv, err := d.Add(candidate)
	require.NoError(t, err)
	return iv
}

func TestDayScheduleAdd(t *testing.T) {
	d := &DaySchedule{Day: Monday}

	first := addRange(t, d, 8*60, 12*60)
	assert.NotEmpty(t, first.ID)

	// Overlapping candidate is rejected and names the conflict.
	candidate, err := NewInterval(11*60, 13*60)
	require.NoError(t, err)
	_, err = d.Add(candidate)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Len(t, conflict.Conflicts, 1)
	assert.Equal(t, first.ID, conflict.Conflicts[0].ID)
	assert.Len(t, d.Intervals, 1, "failed add must not mutate the day")

	// Back-to-back intervals are allowed.
	second := addRange(t, d, 12*60, 18*60)
	assert.NotEqual(t, first.ID, second.ID)
	require.Len(t, d.Intervals, 2)
	assert.Equal(t, []Interval{first, second}, d.Intervals)
}

func TestDayScheduleAddDuplicate(t *testing.T) {
	d := &DaySchedule{Day: Tuesday}
	addRange(t, d, 9*60, 17*60)

	candidate, err := NewInterval(9*60, 17*60)
	require.NoError(t, err)
	_, err = d.Add(candidate)
	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestDayScheduleKeepsStartOrder(t *testing.T) {
	d := &DaySchedule{Day: Wednesday}
	addRange(t, d, 14*60, 18*60)
	addRange(t, d, 8*60, 12*60)
	addRange(t, d, 12*60, 14*60)

	starts := []int{}
	for _, iv := range d.Intervals {
		starts = append(starts, iv.Start)
	}
	assert.Equal(t, []int{8 * 60, 12 * 60, 14 * 60}, starts)
}

func TestDayScheduleReplace(t *testing.T) {
	d := &DaySchedule{Day: Thursday}
	iv := addRange(t, d, 9*60, 12*60)
	other := addRange(t, d, 14*60, 18*60)

	// Growing an interval must not conflict with its own prior version.
	candidate, err := NewInterval(9*60, 13*60)
	require.NoError(t, err)
	updated, err := d.Replace(iv.ID, candidate)
	require.NoError(t, err)
	assert.Equal(t, iv.ID, updated.ID, "identity survives a replace")
	assert.Equal(t, 13*60, updated.End)

	// But it still conflicts with real siblings.
	candidate, err = NewInterval(9*60, 15*60)
	require.NoError(t, err)
	_, err = d.Replace(iv.ID, candidate)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Len(t, conflict.Conflicts, 1)
	assert.Equal(t, other.ID, conflict.Conflicts[0].ID)

	got, ok := d.Get(iv.ID)
	require.True(t, ok)
	assert.Equal(t, 13*60, got.End, "failed replace must not mutate the day")
}

func TestDayScheduleReplaceMissing(t *testing.T) {
	d := &DaySchedule{Day: Friday}
	candidate, err := NewInterval(9*60, 12*60)
	require.NoError(t, err)

	_, err = d.Replace("gone", candidate)
	assert.ErrorIs(t, err, ErrIntervalNotFound)
	assert.Empty(t, d.Intervals)
}

func TestDayScheduleRemove(t *testing.T) {
	d := &DaySchedule{Day: Saturday}
	iv := addRange(t, d, 10*60, 14*60)

	assert.True(t, d.Remove(iv.ID))
	assert.True(t, d.IsEmpty())
	assert.False(t, d.Remove(iv.ID), "second remove is a no-op")
}

// 08:00-12:00 succeeds, 11:00-13:00 conflicts with it, 12:00-18:00 lands
// back-to-back.
func TestDayScheduleScenario(t *testing.T) {
	d := &DaySchedule{Day: Monday}

	first := addRange(t, d, 8*60, 12*60)

	candidate, err := NewInterval(11*60, 13*60)
	require.NoError(t, err)
	_, err = d.Add(candidate)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, first.ID, conflict.Conflicts[0].ID)

	addRange(t, d, 12*60, 18*60)

	require.Len(t, d.Intervals, 2)
	assert.Equal(t, "08:00 - 12:00", d.Intervals[0].String())
	assert.Equal(t, "12:00 - 18:00", d.Intervals[1].String())
}

// Pairwise no-overlap must hold after any successful sequence of mutations.
func TestDayScheduleInvariant(t *testing.T) {
	d := &DaySchedule{Day: Sunday}
	ranges := [][2]int{
		{8 * 60, 10 * 60}, {10 * 60, 12 * 60}, {9 * 60, 11 * 60},
		{13 * 60, 15 * 60}, {14 * 60, 16 * 60}, {12 * 60, 13 * 60},
	}
	for _, r := range ranges {
		candidate, err := NewInterval(r[0], r[1])
		require.NoError(t, err)
		d.Add(candidate)
	}

	for i, a := range d.Intervals {
		for j, b := range d.Intervals {
			if i == j {
				continue
			}
			assert.False(t, a.Start < b.End && b.Start < a.End,
				"intervals %s and %s overlap", a, b)
		}
	}
}
