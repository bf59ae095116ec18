// File: services/hours/store.go
package hours

import (
	"context"
	"encoding/json"
	"time"

	"vitrina/services/schedule"

	"github.com/go-redis/redis/v8"
)

const editorKeyPrefix = "hours:editor:"

// EditorRecord is an open editor session scoped to its owning business.
type EditorRecord struct {
	BusinessID string                 `json:"businessId"`
	Session    schedule.EditorSession `json:"session"`
}

// EditorStore parks editor sessions between requests. A session that is
// never saved or cancelled simply expires, which is the cancel path.
type EditorStore interface {
	Get(ctx context.Context, sessionID string) (*EditorRecord, error)
	Put(ctx context.Context, rec *EditorRecord) error
	Delete(ctx context.Context, sessionID string) error
}

type RedisEditorStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisEditorStore(client *redis.Client, ttl time.Duration) *RedisEditorStore {
	return &RedisEditorStore{client: client, ttl: ttl}
}

// Get returns nil without error when the session is unknown or expired.
func (s *RedisEditorStore) Get(ctx context.Context, sessionID string) (*EditorRecord, error) {
	key := editorKeyPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rec EditorRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *RedisEditorStore) Put(ctx context.Context, rec *EditorRecord) error {
	key := editorKeyPrefix + rec.Session.ID
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisEditorStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, editorKeyPrefix+sessionID).Err()
}
