// File: services/schedule/interval.go
package schedule

import (
	"fmt"
)

// MinutesPerDay bounds every interval; schedules never cross midnight.
const MinutesPerDay = 24 * 60

// Weekday identifies one of the seven fixed days of a business week.
// The week starts on Monday, matching how merchants read their hours.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Weekdays returns all seven days in week order.
func Weekdays() [7]Weekday {
	return [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// ParseWeekday maps a wire day name (e.g. "monday") to its Weekday.
func ParseWeekday(name string) (Weekday, error) {
	for i, n := range weekdayNames {
		if n == name {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

// Interval is a single open/close range within one day.
// Start and End are minutes from midnight (e.g. 480 for 8:00 AM).
type Interval struct {
	ID    string `json:"id"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// NewInterval builds an unidentified interval, enforcing the construction
// invariant: 0 <= start < end <= 1440. The ID is assigned on insert.
func NewInterval(start, end int) (Interval, error) {
	if start < 0 || end > MinutesPerDay {
		return Interval{}, ErrOutOfDayBounds
	}
	if start >= end {
		return Interval{}, ErrInvalidTimeOrder
	}
	return Interval{Start: start, End: end}, nil
}

// ParseClock converts a zero-padded 24-hour "HH:MM" string to minutes from
// midnight. "24:00" is accepted as the end-of-day closing time.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &h, &m); err != nil || len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes from midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// StartClock returns the opening time as "HH:MM".
func (iv Interval) StartClock() string { return FormatClock(iv.Start) }

// EndClock returns the closing time as "HH:MM".
func (iv Interval) EndClock() string { return FormatClock(iv.End) }

func (iv Interval) String() string {
	return fmt.Sprintf("%s - %s", iv.StartClock(), iv.EndClock())
}
