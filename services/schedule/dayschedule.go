// File: services/schedule/dayschedule.go
package schedule

import (
	"sort"

	"github.com/google/uuid"
)

// DaySchedule holds the non-overlapping open intervals of one weekday.
// All mutation goes through Add/Replace/Remove so the no-overlap invariant
// can never be observed broken.
type DaySchedule struct {
	Day       Weekday    `json:"day"`
	Intervals []Interval `json:"intervals"`
}

// Add validates the candidate against every stored interval, assigns it a
// fresh id and inserts it in start order. On conflict the schedule is left
// untouched and the returned *ConflictError names the colliding intervals.
func (d *DaySchedule) Add(candidate Interval) (Interval, error) {
	if overlap, conflicts := Overlaps(d.Intervals, candidate, ""); overlap {
		return Interval{}, &ConflictError{Conflicts: conflicts}
	}
	candidate.ID = uuid.New().String()
	d.insert(candidate)
	return candidate, nil
}

// Replace swaps the start/end of the interval identified by id, keeping its
// identity. The overlap check excludes the interval itself so an edit never
// conflicts with its own prior version. Returns ErrIntervalNotFound if the
// id is no longer present; the schedule is unchanged on any error.
func (d *DaySchedule) Replace(id string, candidate Interval) (Interval, error) {
	idx := -1
	for i, iv := range d.Intervals {
		if iv.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Interval{}, ErrIntervalNotFound
	}
	if overlap, conflicts := Overlaps(d.Intervals, candidate, id); overlap {
		return Interval{}, &ConflictError{Conflicts: conflicts}
	}
	candidate.ID = id
	d.Intervals = append(d.Intervals[:idx], d.Intervals[idx+1:]...)
	d.insert(candidate)
	return candidate, nil
}

// addWithID inserts a candidate keeping its existing id, assigning a fresh
// one only when the id is empty or already taken within the day. Used by
// hydration to restore stored identities.
func (d *DaySchedule) addWithID(candidate Interval) (Interval, error) {
	if overlap, conflicts := Overlaps(d.Intervals, candidate, ""); overlap {
		return Interval{}, &ConflictError{Conflicts: conflicts}
	}
	if candidate.ID == "" {
		candidate.ID = uuid.New().String()
	} else if _, taken := d.Get(candidate.ID); taken {
		candidate.ID = uuid.New().String()
	}
	d.insert(candidate)
	return candidate, nil
}

// Remove deletes the interval with the given id, reporting whether it was
// present. Removing an unknown id is an idempotent no-op.
func (d *DaySchedule) Remove(id string) bool {
	for i, iv := range d.Intervals {
		if iv.ID == id {
			d.Intervals = append(d.Intervals[:i], d.Intervals[i+1:]...)
			return true
		}
	}
	return false
}

// Get looks up an interval by id.
func (d *DaySchedule) Get(id string) (Interval, bool) {
	for _, iv := range d.Intervals {
		if iv.ID == id {
			return iv, true
		}
	}
	return Interval{}, false
}

// IsEmpty reports whether the day has no configured hours.
func (d *DaySchedule) IsEmpty() bool {
	return len(d.Intervals) == 0
}

func (d *DaySchedule) insert(iv Interval) {
	d.Intervals = append(d.Intervals, iv)
	sort.Slice(d.Intervals, func(i, j int) bool {
		return d.Intervals[i].Start < d.Intervals[j].Start
	})
}
