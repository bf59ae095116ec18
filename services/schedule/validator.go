// File: services/schedule/validator.go
package schedule

// Overlaps reports whether the candidate shares any open sub-range with the
// existing intervals, and returns every sibling it collides with so callers
// can name them. Two intervals overlap iff a.Start < b.End && b.Start < a.End:
// back-to-back intervals sharing an endpoint (12:00-14:00, 14:00-18:00) do
// not conflict. When excludeID is non-empty that interval is skipped, which
// lets an edit-in-place avoid conflicting with its own previous version.
func Overlaps(existing []Interval, candidate Interval, excludeID string) (bool, []Interval) {
	var conflicts []Interval
	for _, iv := range existing {
		if excludeID != "" && iv.ID == excludeID {
			continue
		}
		if candidate.Start < iv.End && iv.Start < candidate.End {
			conflicts = append(conflicts, iv)
		}
	}
	return len(conflicts) > 0, conflicts
}
