// File: services/schedule/weekschedule.go
package schedule

// WeekSchedule maps every weekday to its DaySchedule. The map is total:
// all seven days exist from construction on and are only ever emptied,
// never removed.
type WeekSchedule struct {
	days map[Weekday]*DaySchedule
}

// NewWeekSchedule builds an empty week with all seven days present.
func NewWeekSchedule() *WeekSchedule {
	ws := &WeekSchedule{days: make(map[Weekday]*DaySchedule, 7)}
	for _, day := range Weekdays() {
		ws.days[day] = &DaySchedule{Day: day}
	}
	return ws
}

// ForDay returns the schedule of the given day. The lookup is total and
// never fails for a valid Weekday.
func (ws *WeekSchedule) ForDay(day Weekday) *DaySchedule {
	return ws.days[day]
}

// HasAnySchedule reports whether at least one day has configured hours.
// This gates the "at least one day required" rule on profile submission.
func (ws *WeekSchedule) HasAnySchedule() bool {
	for _, day := range Weekdays() {
		if !ws.days[day].IsEmpty() {
			return true
		}
	}
	return false
}
