// File: services/hours/service.go
package hours

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"vitrina/models"
	"vitrina/services/schedule"
)

// GetWeek returns the stored week of a business, hydrating an empty week
// when none has been saved yet.
func (s *DefaultHoursService) GetWeek(ctx context.Context, businessID string) (*models.WeekHoursDTO, error) {
	if payload, ok := s.Cache.Get(ctx, businessID); ok {
		return &models.WeekHoursDTO{Days: payload, Configured: payloadConfigured(payload)}, nil
	}

	ws, err := s.loadWeek(ctx, businessID)
	if err != nil {
		return nil, err
	}

	payload := schedule.ToPayload(ws)
	s.Cache.Set(ctx, businessID, payload)
	return &models.WeekHoursDTO{Days: payload, Configured: ws.HasAnySchedule()}, nil
}

// ReplaceWeek swaps the whole week for the given payload, as when the form
// restores a draft or the client pushes a bulk edit. Malformed entries are
// dropped and counted, never fatal.
func (s *DefaultHoursService) ReplaceWeek(ctx context.Context, businessID string, payload models.WeekPayload) (*models.WeekHoursDTO, error) {
	ws, dropped := schedule.LoadWeekSchedule(payload)
	if dropped > 0 {
		zap.L().Info("Dropped malformed hours entries on load",
			zap.String("businessID", businessID), zap.Int("dropped", dropped))
	}

	if err := s.persistWeek(ctx, businessID, ws); err != nil {
		return nil, err
	}

	return &models.WeekHoursDTO{
		Days:       schedule.ToPayload(ws),
		Configured: ws.HasAnySchedule(),
		Dropped:    dropped,
	}, nil
}

// RemoveInterval deletes one interval from a day. Removing an id that is
// already gone is a no-op, not an error; the client just gets the current
// day back.
func (s *DefaultHoursService) RemoveInterval(ctx context.Context, businessID, dayName, intervalID string) (*models.DayHoursDTO, error) {
	day, err := schedule.ParseWeekday(dayName)
	if err != nil {
		return nil, ErrUnknownDay
	}

	ws, err := s.loadWeek(ctx, businessID)
	if err != nil {
		return nil, err
	}

	if ws.ForDay(day).Remove(intervalID) {
		if err := s.persistWeek(ctx, businessID, ws); err != nil {
			return nil, err
		}
	}

	dto := dayToDTO(ws.ForDay(day))
	return &dto, nil
}

// loadWeek hydrates the business's WeekSchedule from its stored document.
// A business with no stored hours gets a fresh empty week.
func (s *DefaultHoursService) loadWeek(ctx context.Context, businessID string) (*schedule.WeekSchedule, error) {
	doc, err := s.Repo.GetByBusinessID(ctx, businessID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return schedule.NewWeekSchedule(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch business hours: %w", err)
	}

	ws, dropped := schedule.LoadWeekSchedule(doc.Days)
	if dropped > 0 {
		// Stored data is validated on write, so this only fires on legacy
		// or hand-edited documents.
		zap.L().Warn("Dropped malformed stored hours entries",
			zap.String("businessID", businessID), zap.Int("dropped", dropped))
	}
	return ws, nil
}

func (s *DefaultHoursService) persistWeek(ctx context.Context, businessID string, ws *schedule.WeekSchedule) error {
	doc := &models.BusinessHoursDocument{
		BusinessID: businessID,
		Days:       schedule.ToPayload(ws),
	}
	if err := s.Repo.Upsert(ctx, doc); err != nil {
		return fmt.Errorf("failed to persist business hours: %w", err)
	}
	s.Cache.Invalidate(ctx, businessID)
	return nil
}

func payloadConfigured(payload models.WeekPayload) bool {
	for _, ranges := range payload {
		if len(ranges) > 0 {
			return true
		}
	}
	return false
}

func intervalToDTO(iv schedule.Interval) models.IntervalDTO {
	return models.IntervalDTO{ID: iv.ID, Start: iv.StartClock(), End: iv.EndClock()}
}

func dayToDTO(d *schedule.DaySchedule) models.DayHoursDTO {
	intervals := make([]models.IntervalDTO, 0, len(d.Intervals))
	for _, iv := range d.Intervals {
		intervals = append(intervals, intervalToDTO(iv))
	}
	return models.DayHoursDTO{Day: d.Day.String(), Intervals: intervals}
}
