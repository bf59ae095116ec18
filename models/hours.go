// File: models/hours.go
package models

import "time"

// TimeRange is one open/close pair on the wire, zero-padded 24-hour "HH:MM".
// The id is opaque and server-assigned; clients echo it back to address
// edits and deletes, and may omit it when pushing new ranges.
type TimeRange struct {
	ID    string `json:"id,omitempty" bson:"id,omitempty"`
	Start string `json:"start" bson:"start"`
	End   string `json:"end" bson:"end"`
}

// WeekPayload is the per-day hours shape exchanged with clients and stored
// in the business_hours collection. Keys are the seven lowercase English
// day names; every key is always present, possibly with an empty list.
type WeekPayload map[string][]TimeRange

// BusinessHoursDocument is the persisted weekly hours of one business.
type BusinessHoursDocument struct {
	BusinessID string      `bson:"businessId" json:"businessId"`
	Days       WeekPayload `bson:"days" json:"days"`
	Version    int         `bson:"version" json:"version"`
	UpdatedAt  time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// WeekHoursDTO is the GET/PUT response for a business's hours.
type WeekHoursDTO struct {
	Days       WeekPayload `json:"days"`
	Configured bool        `json:"configured"`
	Dropped    int         `json:"dropped,omitempty"`
}

// IntervalDTO is one identified interval as returned to clients.
type IntervalDTO struct {
	ID    string `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayHoursDTO is the intervals of a single day, with their ids, so the
// client can address edits and deletes.
type DayHoursDTO struct {
	Day       string        `json:"day"`
	Intervals []IntervalDTO `json:"intervals"`
}

// OpenEditorRequest opens an hours editor session. IntervalID empty means
// create mode; set, the named interval is loaded for editing.
type OpenEditorRequest struct {
	Day        string `json:"day" binding:"required"`
	IntervalID string `json:"intervalId,omitempty"`
}

// UpdateEditorRequest changes the composed times of an open session.
// Fields are pointers so a PATCH can change either bound independently.
type UpdateEditorRequest struct {
	Start *string `json:"start,omitempty"`
	End   *string `json:"end,omitempty"`
}

// EditorStateDTO reflects an editor session back to the client.
type EditorStateDTO struct {
	SessionID string        `json:"sessionId"`
	Day       string        `json:"day"`
	Mode      string        `json:"mode"` // "create" or "edit"
	Start     string        `json:"start"`
	End       string        `json:"end"`
	Conflicts []IntervalDTO `json:"conflicts,omitempty"`
}

// EditorSaveResponse is returned when a session commits. Interval is nil
// when the save turned out to be a no-op (the edited interval had already
// been deleted).
type EditorSaveResponse struct {
	Interval *IntervalDTO `json:"interval,omitempty"`
	Day      DayHoursDTO  `json:"day"`
}
