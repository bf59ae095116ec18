// File: services/schedule/payload.go
package schedule

import (
	"vitrina/models"
)

// LoadWeekSchedule hydrates a WeekSchedule from the per-day payload shape.
// Malformed entries (unparseable times, start >= end, ranges that would
// overlap an already-loaded sibling) and unknown day keys are dropped and
// counted rather than failing the load: a partially valid draft must still
// produce a usable schedule. Interval ids present in the payload are
// preserved so stored schedules keep stable identities across loads.
func LoadWeekSchedule(payload models.WeekPayload) (*WeekSchedule, int) {
	ws := NewWeekSchedule()
	dropped := 0

	for name, ranges := range payload {
		day, err := ParseWeekday(name)
		if err != nil {
			dropped += len(ranges)
			continue
		}
		for _, r := range ranges {
			iv, err := parseRange(r)
			if err != nil {
				dropped++
				continue
			}
			if _, err := ws.ForDay(day).addWithID(iv); err != nil {
				dropped++
			}
		}
	}
	return ws, dropped
}

// ToPayload serializes a WeekSchedule into the wire shape. All seven day
// keys are emitted, empty days included, so the payload is always total.
func ToPayload(ws *WeekSchedule) models.WeekPayload {
	payload := make(models.WeekPayload, 7)
	for _, day := range Weekdays() {
		sched := ws.ForDay(day)
		ranges := make([]models.TimeRange, 0, len(sched.Intervals))
		for _, iv := range sched.Intervals {
			ranges = append(ranges, models.TimeRange{ID: iv.ID, Start: iv.StartClock(), End: iv.EndClock()})
		}
		payload[day.String()] = ranges
	}
	return payload
}

func parseRange(r models.TimeRange) (Interval, error) {
	start, err := ParseClock(r.Start)
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseClock(r.End)
	if err != nil {
		return Interval{}, err
	}
	iv, err := NewInterval(start, end)
	if err != nil {
		return Interval{}, err
	}
	iv.ID = r.ID
	return iv, nil
}
