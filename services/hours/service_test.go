package hours

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"vitrina/models"
)

// fakeHoursRepo keeps week documents in memory.
type fakeHoursRepo struct {
	docs    map[string]*models.BusinessHoursDocument
	upserts int
}

func newFakeHoursRepo() *fakeHoursRepo {
	return &fakeHoursRepo{docs: make(map[string]*models.BusinessHoursDocument)}
}

func (r *fakeHoursRepo) GetByBusinessID(_ context.Context, businessID string) (*models.BusinessHoursDocument, error) {
	doc, ok := r.docs[businessID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return doc, nil
}

func (r *fakeHoursRepo) Upsert(_ context.Context, doc *models.BusinessHoursDocument) error {
	r.upserts++
	stored := *doc
	stored.Version++
	r.docs[doc.BusinessID] = &stored
	return nil
}

func (r *fakeHoursRepo) DeleteByBusinessID(_ context.Context, businessID string) error {
	delete(r.docs, businessID)
	return nil
}

func (r *fakeHoursRepo) EnsureIndexes(context.Context) error { return nil }

// memEditorStore is an in-memory EditorStore.
type memEditorStore struct {
	recs map[string]*EditorRecord
}

func newMemEditorStore() *memEditorStore {
	return &memEditorStore{recs: make(map[string]*EditorRecord)}
}

func (s *memEditorStore) Get(_ context.Context, sessionID string) (*EditorRecord, error) {
	rec, ok := s.recs[sessionID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (s *memEditorStore) Put(_ context.Context, rec *EditorRecord) error {
	cp := *rec
	s.recs[rec.Session.ID] = &cp
	return nil
}

func (s *memEditorStore) Delete(_ context.Context, sessionID string) error {
	delete(s.recs, sessionID)
	return nil
}

// memWeekCache records invalidations.
type memWeekCache struct {
	entries       map[string]models.WeekPayload
	invalidations int
}

func newMemWeekCache() *memWeekCache {
	return &memWeekCache{entries: make(map[string]models.WeekPayload)}
}

func (c *memWeekCache) Get(_ context.Context, businessID string) (models.WeekPayload, bool) {
	payload, ok := c.entries[businessID]
	return payload, ok
}

func (c *memWeekCache) Set(_ context.Context, businessID string, payload models.WeekPayload) {
	c.entries[businessID] = payload
}

func (c *memWeekCache) Invalidate(_ context.Context, businessID string) {
	c.invalidations++
	delete(c.entries, businessID)
}

func newTestService() (*DefaultHoursService, *fakeHoursRepo, *memEditorStore, *memWeekCache) {
	repo := newFakeHoursRepo()
	store := newMemEditorStore()
	cache := newMemWeekCache()
	return &DefaultHoursService{Repo: repo, Sessions: store, Cache: cache}, repo, store, cache
}

const testBusiness = "biz-42"

func TestGetWeekEmptyBusiness(t *testing.T) {
	svc, _, _, _ := newTestService()

	week, err := svc.GetWeek(context.Background(), testBusiness)
	require.NoError(t, err)
	assert.False(t, week.Configured)
	require.Len(t, week.Days, 7)
	for day, ranges := range week.Days {
		assert.Empty(t, ranges, "day %s should start empty", day)
	}
}

func TestGetWeekUsesCache(t *testing.T) {
	svc, _, _, cache := newTestService()
	cache.entries[testBusiness] = models.WeekPayload{
		"monday": {{Start: "08:00", End: "12:00"}},
	}

	week, err := svc.GetWeek(context.Background(), testBusiness)
	require.NoError(t, err)
	assert.True(t, week.Configured)
	assert.Len(t, week.Days["monday"], 1)
}

func TestReplaceWeek(t *testing.T) {
	svc, repo, _, cache := newTestService()

	week, err := svc.ReplaceWeek(context.Background(), testBusiness, models.WeekPayload{
		"monday": {
			{Start: "08:00", End: "12:00"},
			{Start: "15:00", End: "10:00"}, // reversed, dropped
		},
		"sunday": {
			{Start: "10:00", End: "14:00"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, week.Dropped)
	assert.True(t, week.Configured)

	doc := repo.docs[testBusiness]
	require.NotNil(t, doc)
	assert.Len(t, doc.Days["monday"], 1)
	assert.Len(t, doc.Days["sunday"], 1)
	assert.Equal(t, 1, cache.invalidations)
}

func TestRemoveInterval(t *testing.T) {
	svc, repo, _, _ := newTestService()

	_, err := svc.ReplaceWeek(context.Background(), testBusiness, models.WeekPayload{
		"tuesday": {{Start: "09:00", End: "17:00"}},
	})
	require.NoError(t, err)

	week, err := svc.GetWeek(context.Background(), testBusiness)
	require.NoError(t, err)
	require.Len(t, week.Days["tuesday"], 1)

	day, err := svc.RemoveInterval(context.Background(), testBusiness, "tuesday", "not-there")
	require.NoError(t, err)
	require.Len(t, day.Intervals, 1, "removing an unknown id is a no-op")
	upsertsBefore := repo.upserts

	day, err = svc.RemoveInterval(context.Background(), testBusiness, "tuesday", day.Intervals[0].ID)
	require.NoError(t, err)
	assert.Empty(t, day.Intervals)
	assert.Equal(t, upsertsBefore+1, repo.upserts)

	_, err = svc.RemoveInterval(context.Background(), testBusiness, "martes", "x")
	assert.ErrorIs(t, err, ErrUnknownDay)
}
