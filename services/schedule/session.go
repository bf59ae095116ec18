// File: services/schedule/session.go
package schedule

import "errors"

// EditorSession composes one interval add/edit interaction. It holds the
// candidate times while the user edits and only touches the DaySchedule at
// Save, so validation and commit are a single atomic step and no external
// reader ever observes a half-applied change.
//
// The session moves Editing -> closed on a successful save or a cancel; a
// conflicting save leaves it open, with the conflicts recorded, so the user
// can correct the times and retry. All fields are exported so a session can
// be parked in a cache between requests.
type EditorSession struct {
	ID        string     `json:"id"`
	Day       Weekday    `json:"day"`
	EditingID string     `json:"editingId,omitempty"` // empty means create mode
	Start     int        `json:"start"`
	End       int        `json:"end"`
	Conflicts []Interval `json:"conflicts,omitempty"`
	Done      bool       `json:"done"`
}

// Default times offered when a merchant adds a brand-new interval.
const (
	DefaultOpenMinute  = 8 * 60
	DefaultCloseMinute = 18 * 60
)

// NewEditorSession opens a create-mode session for the given day, seeded
// with the default 08:00-18:00 range.
func NewEditorSession(id string, day Weekday) *EditorSession {
	return &EditorSession{
		ID:    id,
		Day:   day,
		Start: DefaultOpenMinute,
		End:   DefaultCloseMinute,
	}
}

// NewEditorSessionFor opens an edit-mode session pre-loaded with an
// existing interval's times.
func NewEditorSessionFor(id string, day Weekday, iv Interval) *EditorSession {
	return &EditorSession{
		ID:        id,
		Day:       day,
		EditingID: iv.ID,
		Start:     iv.Start,
		End:       iv.End,
	}
}

// Mode reports "create" or "edit".
func (s *EditorSession) Mode() string {
	if s.EditingID == "" {
		return "create"
	}
	return "edit"
}

// SetStart updates the composed opening time. Any previously reported
// conflict is cleared; order is not checked until Save.
func (s *EditorSession) SetStart(minutes int) error {
	if s.Done {
		return ErrSessionClosed
	}
	if minutes < 0 || minutes > MinutesPerDay {
		return ErrOutOfDayBounds
	}
	s.Start = minutes
	s.Conflicts = nil
	return nil
}

// SetEnd updates the composed closing time.
func (s *EditorSession) SetEnd(minutes int) error {
	if s.Done {
		return ErrSessionClosed
	}
	if minutes < 0 || minutes > MinutesPerDay {
		return ErrOutOfDayBounds
	}
	s.End = minutes
	s.Conflicts = nil
	return nil
}

// Save validates the composed interval and commits it into the day. Order
// is enforced locally first (ErrInvalidTimeOrder, siblings never consulted);
// only then is the candidate validated against the day's existing hours.
// On conflict the session stays open with the conflicts recorded. On
// success, or when the edited interval has already been deleted underneath
// the session, the session closes.
func (s *EditorSession) Save(day *DaySchedule) (Interval, error) {
	if s.Done {
		return Interval{}, ErrSessionClosed
	}
	candidate, err := NewInterval(s.Start, s.End)
	if err != nil {
		return Interval{}, err
	}

	var committed Interval
	if s.EditingID == "" {
		committed, err = day.Add(candidate)
	} else {
		committed, err = day.Replace(s.EditingID, candidate)
	}
	if err != nil {
		var conflict *ConflictError
		if errors.As(err, &conflict) {
			s.Conflicts = conflict.Conflicts
			return Interval{}, err
		}
		// Replace against a deleted id: nothing left to commit, close.
		s.Done = true
		return Interval{}, err
	}

	s.Done = true
	return committed, nil
}

// Cancel discards the session without mutating the schedule.
func (s *EditorSession) Cancel() {
	s.Done = true
}
