// File: handlers/hours.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vitrina/models"
	"vitrina/services/hours"
	"vitrina/services/schedule"
	"vitrina/utils"
)

// BusinessHoursHandler exposes the weekly operating-hours endpoints.
type BusinessHoursHandler struct {
	Service hours.HoursService
}

func NewBusinessHoursHandler(svc hours.HoursService) *BusinessHoursHandler {
	return &BusinessHoursHandler{Service: svc}
}

// businessID retrieves the authenticated business from the context (set by
// JWTAuthBusinessMiddleware).
func businessID(c *gin.Context) (string, bool) {
	idValue, exists := c.Get("businessID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Business not authenticated"})
		return "", false
	}
	id, ok := idValue.(string)
	if !ok || id == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid business ID in context"})
		return "", false
	}
	return id, true
}

// respondHoursError maps service/engine errors onto HTTP statuses. Overlap
// conflicts carry the colliding intervals so the client can point at them.
func respondHoursError(c *gin.Context, err error) {
	var conflict *schedule.ConflictError
	switch {
	case errors.As(err, &conflict):
		conflicts := make([]models.IntervalDTO, 0, len(conflict.Conflicts))
		for _, iv := range conflict.Conflicts {
			conflicts = append(conflicts, models.IntervalDTO{
				ID:    iv.ID,
				Start: iv.StartClock(),
				End:   iv.EndClock(),
			})
		}
		c.JSON(http.StatusConflict, gin.H{
			"error":     "Hours overlap an existing interval",
			"conflicts": conflicts,
		})
	case errors.Is(err, schedule.ErrInvalidTimeOrder),
		errors.Is(err, schedule.ErrOutOfDayBounds),
		errors.Is(err, hours.ErrInvalidClock),
		errors.Is(err, hours.ErrUnknownDay):
		utils.JSONError(c, http.StatusBadRequest, "Invalid hours input", err.Error())
	case errors.Is(err, hours.ErrSessionNotFound),
		errors.Is(err, schedule.ErrIntervalNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	default:
		zap.L().Error("Hours operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process hours request"})
	}
}

// GetHoursHandler returns the business's current week together with the
// "at least one day configured" flag the profile form gates on.
func (h *BusinessHoursHandler) GetHoursHandler(c *gin.Context) {
	id, ok := businessID(c)
	if !ok {
		return
	}

	week, err := h.Service.GetWeek(c.Request.Context(), id)
	if err != nil {
		respondHoursError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// ReplaceHoursHandler replaces the whole week from a per-day payload.
// Malformed entries are dropped; the response reports how many.
func (h *BusinessHoursHandler) ReplaceHoursHandler(c *gin.Context) {
	id, ok := businessID(c)
	if !ok {
		return
	}

	var payload models.WeekPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		zap.L().Error("Invalid hours payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	week, err := h.Service.ReplaceWeek(c.Request.Context(), id, payload)
	if err != nil {
		respondHoursError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// DeleteIntervalHandler removes one interval from a day. Deleting an
// already-deleted interval returns the unchanged day.
func (h *BusinessHoursHandler) DeleteIntervalHandler(c *gin.Context) {
	id, ok := businessID(c)
	if !ok {
		return
	}

	day := c.Param("day")
	intervalID := c.Param("intervalID")
	if intervalID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing interval ID in path"})
		return
	}

	dto, err := h.Service.RemoveInterval(c.Request.Context(), id, day, intervalID)
	if err != nil {
		respondHoursError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Interval removed",
		"day":     dto,
	})
}
