// File: services/schedule/errors.go
package schedule

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidTimeOrder indicates an interval whose end is not strictly
	// after its start. Caught at construction, before any overlap check.
	ErrInvalidTimeOrder = errors.New("closing time must be after opening time")

	// ErrOutOfDayBounds indicates an interval reaching outside 00:00-24:00.
	ErrOutOfDayBounds = errors.New("interval must fall within a single day")

	// ErrIntervalNotFound indicates a replace against an id that is no
	// longer present. Callers treat it as a benign no-op.
	ErrIntervalNotFound = errors.New("interval not found")

	// ErrSessionClosed indicates an operation on an editor session that has
	// already been saved or cancelled.
	ErrSessionClosed = errors.New("editor session is closed")
)

// ConflictError reports the sibling intervals a candidate would overlap.
type ConflictError struct {
	Conflicts []Interval
}

func (e *ConflictError) Error() string {
	labels := make([]string, len(e.Conflicts))
	for i, iv := range e.Conflicts {
		labels[i] = iv.String()
	}
	return fmt.Sprintf("interval overlaps existing hours: %s", strings.Join(labels, ", "))
}
