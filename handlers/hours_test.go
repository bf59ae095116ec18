package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrina/models"
	"vitrina/services/hours"
	"vitrina/services/schedule"
)

// stubHoursService returns canned results so the tests can exercise the
// HTTP status mapping without Mongo or Redis behind it.
type stubHoursService struct {
	week    *models.WeekHoursDTO
	day     *models.DayHoursDTO
	state   *models.EditorStateDTO
	save    *models.EditorSaveResponse
	err     error
	gotBiz  string
	gotDay  string
	gotID   string
	payload models.WeekPayload
}

func (s *stubHoursService) GetWeek(_ context.Context, businessID string) (*models.WeekHoursDTO, error) {
	s.gotBiz = businessID
	return s.week, s.err
}

func (s *stubHoursService) ReplaceWeek(_ context.Context, businessID string, payload models.WeekPayload) (*models.WeekHoursDTO, error) {
	s.gotBiz = businessID
	s.payload = payload
	return s.week, s.err
}

func (s *stubHoursService) RemoveInterval(_ context.Context, businessID, day, intervalID string) (*models.DayHoursDTO, error) {
	s.gotBiz, s.gotDay, s.gotID = businessID, day, intervalID
	return s.day, s.err
}

func (s *stubHoursService) OpenEditor(_ context.Context, businessID string, _ models.OpenEditorRequest) (*models.EditorStateDTO, error) {
	s.gotBiz = businessID
	return s.state, s.err
}

func (s *stubHoursService) UpdateEditor(_ context.Context, businessID, sessionID string, _ models.UpdateEditorRequest) (*models.EditorStateDTO, error) {
	s.gotBiz, s.gotID = businessID, sessionID
	return s.state, s.err
}

func (s *stubHoursService) SaveEditor(_ context.Context, businessID, sessionID string) (*models.EditorSaveResponse, error) {
	s.gotBiz, s.gotID = businessID, sessionID
	return s.save, s.err
}

func (s *stubHoursService) CancelEditor(_ context.Context, businessID, sessionID string) error {
	s.gotBiz, s.gotID = businessID, sessionID
	return s.err
}

func newTestRouter(svc hours.HoursService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	// Stands in for JWTAuthBusinessMiddleware.
	router.Use(func(c *gin.Context) {
		c.Set("businessID", "biz-42")
		c.Next()
	})

	h := NewBusinessHoursHandler(svc)
	group := router.Group("/api/businesses/hours")
	group.GET("", h.GetHoursHandler)
	group.PUT("", h.ReplaceHoursHandler)
	group.DELETE("/:day/intervals/:intervalID", h.DeleteIntervalHandler)
	group.POST("/editor", h.OpenEditorHandler)
	group.PATCH("/editor/:sessionID", h.UpdateEditorHandler)
	group.POST("/editor/:sessionID/save", h.SaveEditorHandler)
	group.DELETE("/editor/:sessionID", h.CancelEditorHandler)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetHours(t *testing.T) {
	stub := &stubHoursService{week: &models.WeekHoursDTO{
		Days:       models.WeekPayload{"monday": {{Start: "09:00", End: "17:00"}}},
		Configured: true,
	}}
	router := newTestRouter(stub)

	w := doRequest(router, http.MethodGet, "/api/businesses/hours", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "biz-42", stub.gotBiz)

	var got models.WeekHoursDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.Configured)
	assert.Len(t, got.Days["monday"], 1)
}

func TestGetHoursUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewBusinessHoursHandler(&stubHoursService{})
	router.GET("/api/businesses/hours", h.GetHoursHandler)

	w := doRequest(router, http.MethodGet, "/api/businesses/hours", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReplaceHours(t *testing.T) {
	stub := &stubHoursService{week: &models.WeekHoursDTO{
		Days:       models.WeekPayload{},
		Configured: true,
		Dropped:    2,
	}}
	router := newTestRouter(stub)

	w := doRequest(router, http.MethodPut, "/api/businesses/hours",
		`{"monday":[{"start":"08:00","end":"12:00"}]}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, stub.payload["monday"], 1)
	assert.Contains(t, w.Body.String(), `"dropped":2`)
}

func TestReplaceHoursBadJSON(t *testing.T) {
	router := newTestRouter(&stubHoursService{})

	w := doRequest(router, http.MethodPut, "/api/businesses/hours", `{"monday":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteInterval(t *testing.T) {
	stub := &stubHoursService{day: &models.DayHoursDTO{Day: "monday"}}
	router := newTestRouter(stub)

	w := doRequest(router, http.MethodDelete, "/api/businesses/hours/monday/intervals/iv-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "monday", stub.gotDay)
	assert.Equal(t, "iv-1", stub.gotID)
}

func TestOpenEditor(t *testing.T) {
	stub := &stubHoursService{state: &models.EditorStateDTO{
		SessionID: "sess-1",
		Day:       "monday",
		Mode:      "create",
		Start:     "08:00",
		End:       "18:00",
	}}
	router := newTestRouter(stub)

	w := doRequest(router, http.MethodPost, "/api/businesses/hours/editor", `{"day":"monday"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"sessionId":"sess-1"`)
}

func TestOpenEditorMissingDay(t *testing.T) {
	router := newTestRouter(&stubHoursService{})

	w := doRequest(router, http.MethodPost, "/api/businesses/hours/editor", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveEditorConflict(t *testing.T) {
	existing := schedule.Interval{ID: "iv-1", Start: 8 * 60, End: 12 * 60}
	stub := &stubHoursService{err: &schedule.ConflictError{Conflicts: []schedule.Interval{existing}}}
	router := newTestRouter(stub)

	w := doRequest(router, http.MethodPost, "/api/businesses/hours/editor/sess-1/save", "")
	require.Equal(t, http.StatusConflict, w.Code)

	var body struct {
		Conflicts []models.IntervalDTO `json:"conflicts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Conflicts, 1)
	assert.Equal(t, "iv-1", body.Conflicts[0].ID)
	assert.Equal(t, "08:00", body.Conflicts[0].Start)
	assert.Equal(t, "12:00", body.Conflicts[0].End)
}

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid order", schedule.ErrInvalidTimeOrder, http.StatusBadRequest},
		{"out of bounds", schedule.ErrOutOfDayBounds, http.StatusBadRequest},
		{"bad clock", hours.ErrInvalidClock, http.StatusBadRequest},
		{"unknown day", hours.ErrUnknownDay, http.StatusBadRequest},
		{"session gone", hours.ErrSessionNotFound, http.StatusNotFound},
		{"interval gone", schedule.ErrIntervalNotFound, http.StatusNotFound},
		{"unexpected", errors.New("mongo down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&stubHoursService{err: tc.err})
			w := doRequest(router, http.MethodGet, "/api/businesses/hours", "")
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestCancelEditor(t *testing.T) {
	stub := &stubHoursService{}
	router := newTestRouter(stub)

	w := doRequest(router, http.MethodDelete, "/api/businesses/hours/editor/sess-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sess-1", stub.gotID)
}
