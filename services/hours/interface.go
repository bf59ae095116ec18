// File: services/hours/interface.go
package hours

import (
	"context"
	"errors"

	hoursRepo "vitrina/database/repository/hours"
	"vitrina/models"
)

var (
	// ErrSessionNotFound indicates an unknown or expired editor session.
	ErrSessionNotFound = errors.New("editor session not found or expired")

	// ErrUnknownDay indicates a day key outside the fixed seven-day set.
	ErrUnknownDay = errors.New("unknown weekday")

	// ErrInvalidClock indicates a time that is not a zero-padded 24-hour
	// "HH:MM" string.
	ErrInvalidClock = errors.New("invalid time, expected HH:MM")
)

// HoursService manages the weekly operating hours of businesses: direct
// reads/writes of the whole week plus the interactive editor-session flow
// the mobile hours screen drives.
type HoursService interface {
	GetWeek(ctx context.Context, businessID string) (*models.WeekHoursDTO, error)
	ReplaceWeek(ctx context.Context, businessID string, payload models.WeekPayload) (*models.WeekHoursDTO, error)
	RemoveInterval(ctx context.Context, businessID, day, intervalID string) (*models.DayHoursDTO, error)

	OpenEditor(ctx context.Context, businessID string, req models.OpenEditorRequest) (*models.EditorStateDTO, error)
	UpdateEditor(ctx context.Context, businessID, sessionID string, req models.UpdateEditorRequest) (*models.EditorStateDTO, error)
	SaveEditor(ctx context.Context, businessID, sessionID string) (*models.EditorSaveResponse, error)
	CancelEditor(ctx context.Context, businessID, sessionID string) error
}

// DefaultHoursService is the concrete implementation backed by Mongo for
// the week documents and Redis for caching and open editor sessions.
type DefaultHoursService struct {
	Repo     hoursRepo.HoursRepository
	Sessions EditorStore
	Cache    WeekCache
}
