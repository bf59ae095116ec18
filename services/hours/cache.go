// File: services/hours/cache.go
package hours

import (
	"context"
	"encoding/json"
	"time"

	"vitrina/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const weekKeyPrefix = "hours:week:"

// WeekCache keeps a business's serialized week at hand so the mobile client
// can re-render the hours screen without a database round trip. Entries are
// invalidated on every mutation; reads are best effort.
type WeekCache interface {
	Get(ctx context.Context, businessID string) (models.WeekPayload, bool)
	Set(ctx context.Context, businessID string, payload models.WeekPayload)
	Invalidate(ctx context.Context, businessID string)
}

type RedisWeekCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisWeekCache(client *redis.Client, ttl time.Duration) *RedisWeekCache {
	return &RedisWeekCache{client: client, ttl: ttl}
}

func (c *RedisWeekCache) Get(ctx context.Context, businessID string) (models.WeekPayload, bool) {
	data, err := c.client.Get(ctx, weekKeyPrefix+businessID).Result()
	if err != nil {
		if err != redis.Nil {
			zap.L().Warn("Failed to read week cache", zap.Error(err))
		}
		return nil, false
	}
	var payload models.WeekPayload
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		zap.L().Warn("Corrupt week cache entry, dropping it", zap.String("businessID", businessID), zap.Error(err))
		c.Invalidate(ctx, businessID)
		return nil, false
	}
	return payload, true
}

func (c *RedisWeekCache) Set(ctx context.Context, businessID string, payload models.WeekPayload) {
	b, err := json.Marshal(payload)
	if err != nil {
		zap.L().Warn("Failed to marshal week payload for cache", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, weekKeyPrefix+businessID, b, c.ttl).Err(); err != nil {
		zap.L().Warn("Failed to write week cache", zap.Error(err))
	}
}

func (c *RedisWeekCache) Invalidate(ctx context.Context, businessID string) {
	if err := c.client.Del(ctx, weekKeyPrefix+businessID).Err(); err != nil {
		zap.L().Warn("Failed to invalidate week cache", zap.Error(err))
	}
}
