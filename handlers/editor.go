// File: handlers/editor.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vitrina/models"
)

// OpenEditorHandler starts an hours editor session for one day, in create
// mode or pre-loaded with an existing interval.
func (h *BusinessHoursHandler) OpenEditorHandler(c *gin.Context) {
	id, ok := businessID(c)
	if !ok {
		return
	}

	var req models.OpenEditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Error("Invalid editor open request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	state, err := h.Service.OpenEditor(c.Request.Context(), id, req)
	if err != nil {
		respondHoursError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

// UpdateEditorHandler changes the composed start and/or end time of an open
// session.
func (h *BusinessHoursHandler) UpdateEditorHandler(c *gin.Context) {
	id, ok := businessID(c)
	if !ok {
		return
	}

	sessionID := c.Param("sessionID")
	var req models.UpdateEditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Error("Invalid editor update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	state, err := h.Service.UpdateEditor(c.Request.Context(), id, sessionID, req)
	if err != nil {
		respondHoursError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SaveEditorHandler validates and commits the session's interval. A
// conflict leaves the session open and returns 409 with the colliding
// intervals.
func (h *BusinessHoursHandler) SaveEditorHandler(c *gin.Context) {
	id, ok := businessID(c)
	if !ok {
		return
	}

	sessionID := c.Param("sessionID")
	resp, err := h.Service.SaveEditor(c.Request.Context(), id, sessionID)
	if err != nil {
		respondHoursError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CancelEditorHandler discards an open session; the schedule is untouched.
func (h *BusinessHoursHandler) CancelEditorHandler(c *gin.Context) {
	id, ok := businessID(c)
	if !ok {
		return
	}

	sessionID := c.Param("sessionID")
	if err := h.Service.CancelEditor(c.Request.Context(), id, sessionID); err != nil {
		respondHoursError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Editor session cancelled"})
}
