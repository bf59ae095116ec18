package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"vitrina/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-redis/redis/v8"
)

const (
	authCachePrefix = "auth:biz:"
	authCacheTTL    = 15 * time.Minute
)

// JWTAuthBusinessMiddleware validates the bearer token of a business owner
// and puts the businessID (the token subject) into the request context.
// Validated token hashes are cached in Redis with a sliding TTL so repeated
// requests skip the full parse. Tokens are issued by the platform auth
// service; this middleware only verifies them.
func JWTAuthBusinessMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		computedHash := utils.HashToken(tokenString)
		cacheKey := authCachePrefix + computedHash

		// Check the authorization cache.
		authCache := utils.GetAuthCacheClient()
		if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			// Refresh TTL (sliding expiration) and proceed.
			if err := authCache.Expire(ctx, cacheKey, authCacheTTL).Err(); err != nil {
				logger.Error("Failed to refresh auth cache TTL", zap.Error(err))
			}
			c.Set("businessID", cached)
			c.Next()
			return
		} else if err != nil && err != redis.Nil {
			logger.Error("Error checking auth cache", zap.Error(err))
		}

		// Cache miss: validate signature, expiry and subject.
		businessID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || businessID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Successful validation: cache the hash -> businessID mapping.
		if err := authCache.Set(ctx, cacheKey, businessID, authCacheTTL).Err(); err != nil {
			logger.Error("Failed to set auth cache", zap.Error(err))
		}

		c.Set("businessID", businessID)
		c.Next()
	}
}
