// File: services/hours/editor.go
package hours

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"vitrina/models"
	"vitrina/services/schedule"
)

// OpenEditor starts an add/edit interaction for one day. With an
// IntervalID the named interval's times are pre-loaded (edit mode);
// without, the session starts from the default range (create mode).
func (s *DefaultHoursService) OpenEditor(ctx context.Context, businessID string, req models.OpenEditorRequest) (*models.EditorStateDTO, error) {
	day, err := schedule.ParseWeekday(req.Day)
	if err != nil {
		return nil, ErrUnknownDay
	}

	sessionID := uuid.New().String()
	var sess *schedule.EditorSession
	if req.IntervalID == "" {
		sess = schedule.NewEditorSession(sessionID, day)
	} else {
		ws, err := s.loadWeek(ctx, businessID)
		if err != nil {
			return nil, err
		}
		iv, ok := ws.ForDay(day).Get(req.IntervalID)
		if !ok {
			return nil, schedule.ErrIntervalNotFound
		}
		sess = schedule.NewEditorSessionFor(sessionID, day, iv)
	}

	rec := &EditorRecord{BusinessID: businessID, Session: *sess}
	if err := s.Sessions.Put(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to store editor session: %w", err)
	}
	return sessionToDTO(sess), nil
}

// UpdateEditor changes the composed opening and/or closing time of an open
// session. Each change clears a previously reported conflict; ordering is
// only enforced at save.
func (s *DefaultHoursService) UpdateEditor(ctx context.Context, businessID, sessionID string, req models.UpdateEditorRequest) (*models.EditorStateDTO, error) {
	rec, err := s.getSession(ctx, businessID, sessionID)
	if err != nil {
		return nil, err
	}

	if req.Start != nil {
		minutes, err := schedule.ParseClock(*req.Start)
		if err != nil {
			return nil, ErrInvalidClock
		}
		if err := rec.Session.SetStart(minutes); err != nil {
			return nil, err
		}
	}
	if req.End != nil {
		minutes, err := schedule.ParseClock(*req.End)
		if err != nil {
			return nil, ErrInvalidClock
		}
		if err := rec.Session.SetEnd(minutes); err != nil {
			return nil, err
		}
	}

	if err := s.Sessions.Put(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to store editor session: %w", err)
	}
	return sessionToDTO(&rec.Session), nil
}

// SaveEditor validates and commits the session's interval in one step. On
// success the session is gone and the updated day is returned. On conflict
// the session stays open with the conflicts recorded and nothing is
// persisted. A save against an interval deleted underneath the session
// closes it quietly.
func (s *DefaultHoursService) SaveEditor(ctx context.Context, businessID, sessionID string) (*models.EditorSaveResponse, error) {
	rec, err := s.getSession(ctx, businessID, sessionID)
	if err != nil {
		return nil, err
	}

	ws, err := s.loadWeek(ctx, businessID)
	if err != nil {
		return nil, err
	}
	day := ws.ForDay(rec.Session.Day)

	committed, err := rec.Session.Save(day)
	if err != nil {
		var conflict *schedule.ConflictError
		switch {
		case errors.As(err, &conflict):
			// Keep the session, with its conflicts, open for correction.
			if putErr := s.Sessions.Put(ctx, rec); putErr != nil {
				return nil, fmt.Errorf("failed to store editor session: %w", putErr)
			}
			return nil, err
		case errors.Is(err, schedule.ErrIntervalNotFound):
			// Benign: the interval was deleted while being edited.
			if delErr := s.Sessions.Delete(ctx, sessionID); delErr != nil {
				return nil, fmt.Errorf("failed to discard editor session: %w", delErr)
			}
			dto := dayToDTO(day)
			return &models.EditorSaveResponse{Day: dto}, nil
		default:
			return nil, err
		}
	}

	if err := s.persistWeek(ctx, businessID, ws); err != nil {
		return nil, err
	}
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to discard editor session: %w", err)
	}

	ivDTO := intervalToDTO(committed)
	return &models.EditorSaveResponse{Interval: &ivDTO, Day: dayToDTO(day)}, nil
}

// CancelEditor discards an open session without touching the schedule.
// Cancelling an already-expired session succeeds.
func (s *DefaultHoursService) CancelEditor(ctx context.Context, businessID, sessionID string) error {
	rec, err := s.getSession(ctx, businessID, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	rec.Session.Cancel()
	return s.Sessions.Delete(ctx, sessionID)
}

func (s *DefaultHoursService) getSession(ctx context.Context, businessID, sessionID string) (*EditorRecord, error) {
	rec, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch editor session: %w", err)
	}
	// A session belonging to another business is treated as unknown.
	if rec == nil || rec.BusinessID != businessID {
		return nil, ErrSessionNotFound
	}
	return rec, nil
}

func sessionToDTO(sess *schedule.EditorSession) *models.EditorStateDTO {
	conflicts := make([]models.IntervalDTO, 0, len(sess.Conflicts))
	for _, iv := range sess.Conflicts {
		conflicts = append(conflicts, intervalToDTO(iv))
	}
	return &models.EditorStateDTO{
		SessionID: sess.ID,
		Day:       sess.Day.String(),
		Mode:      sess.Mode(),
		Start:     schedule.FormatClock(sess.Start),
		End:       schedule.FormatClock(sess.End),
		Conflicts: conflicts,
	}
}
