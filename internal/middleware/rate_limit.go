package middleware

import (
	"net/http"
	"sync"
	"time"

	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// buckets holds one token bucket per caller key. Buckets idle longer than
// limiterIdleTTL are dropped on the next sweep.
type buckets struct {
	mu        sync.Mutex
	byKey     map[string]*bucket
	every     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func newBuckets(every rate.Limit, burst int) *buckets {
	return &buckets{byKey: map[string]*bucket{}, every: every, burst: burst, now: time.Now}
}

func (b *buckets) allow(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	if now.Sub(b.lastSweep) > limiterIdleTTL {
		for k, v := range b.byKey {
			if now.Sub(v.lastSeen) > limiterIdleTTL {
				delete(b.byKey, k)
			}
		}
		b.lastSweep = now
	}

	bk, ok := b.byKey[key]
	if !ok {
		bk = &bucket{lim: rate.NewLimiter(b.every, b.burst)}
		b.byKey[key] = bk
	}
	bk.lastSeen = now
	return bk.lim.AllowN(now, 1)
}

// RateLimitByMember throttles clock actions per authenticated member.
// Requests without a member id fall back to the client IP.
func RateLimitByMember(every rate.Limit, burst int) gin.HandlerFunc {
	b := newBuckets(every, burst)
	return func(c *gin.Context) {
		key := c.GetString(CtxMemberID)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}
		if !b.allow(key) {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, slow down", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
