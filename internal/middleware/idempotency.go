package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	CtxIdempotencyCacheKey = "idempotency_cache_key"
	CtxIdempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL = 30 * time.Second
)

// Idempotency replays the cached response of a POST carrying an
// Idempotency-Key and rejects a duplicate that arrives while the first is
// still running. Handlers store the result under CtxIdempotencyCacheKey; a
// lock the handler left behind is released once the chain returns.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	log := zap.L().Named("middleware.idempotency")
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		memberID := c.GetString(CtxMemberID)
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), memberID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cached any
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
				c.AbortWithStatusJSON(http.StatusOK, gin.H{"ok": true, "data": cached})
				return
			}
			log.Warn("discarding unreadable idempotency cache entry", zap.String("key", cacheKey))
		} else if err != redis.Nil {
			log.Error("idempotency cache lookup failed", zap.String("key", cacheKey), zap.Error(err))
		}

		isNew, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Error("idempotency lock failed", zap.String("key", lockKey), zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"ok": false,
				"error": gin.H{
					"code":    "PROCESSING",
					"message": "An identical request is still being processed",
				},
			})
			return
		}

		c.Set(CtxIdempotencyCacheKey, cacheKey)
		c.Set(CtxIdempotencyLockKey, lockKey)

		c.Next()

		ReleaseIdempotencyLock(c, rdb)
	}
}

// ReleaseIdempotencyLock drops the in-flight lock of the current request so a
// retry with the same key can run. Calling it more than once is harmless.
func ReleaseIdempotencyLock(c *gin.Context, rdb *redis.Client) {
	lk := c.GetString(CtxIdempotencyLockKey)
	if lk == "" || rdb == nil {
		return
	}
	c.Set(CtxIdempotencyLockKey, "")
	if err := rdb.Del(c.Request.Context(), lk).Err(); err != nil {
		zap.L().Named("middleware.idempotency").Warn("idempotency unlock failed", zap.String("key", lk), zap.Error(err))
	}
}

// StoreIdempotentResult caches payload for the current idempotent request and
// releases its lock. It is a no-op when the request carried no key.
func StoreIdempotentResult(c *gin.Context, rdb *redis.Client, payload any) {
	if rdb == nil {
		return
	}
	ctx := c.Request.Context()
	defer ReleaseIdempotencyLock(c, rdb)
	ck := c.GetString(CtxIdempotencyCacheKey)
	if ck == "" || payload == nil {
		return
	}
	if data, err := json.Marshal(payload); err == nil {
		_ = rdb.Set(ctx, ck, data, 24*time.Hour).Err()
	}
}
