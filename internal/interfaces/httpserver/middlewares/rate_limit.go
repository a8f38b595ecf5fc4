package middlewares

import (
	"net"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matsols/matsols-api/internal/utils/platformerrors"
)

// rateBucket is a token bucket per client IP.
type rateBucket struct {
	tokens     float64
	lastRefill time.Time
}

// RateLimitMiddleware limits anonymous write endpoints per client IP. A
// non-positive limit disables it.
func RateLimitMiddleware(limitPerMinute float64) gin.HandlerFunc {
	if limitPerMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	var (
		mu      sync.Mutex
		buckets = make(map[string]*rateBucket)
		rate    = limitPerMinute / 60.0
		now     = time.Now
	)

	return func(c *gin.Context) {
		key := rateKey(c)

		mu.Lock()
		t := now()
		bucket, ok := buckets[key]
		if !ok {
			bucket = &rateBucket{tokens: limitPerMinute, lastRefill: t}
			buckets[key] = bucket
		}

		elapsed := t.Sub(bucket.lastRefill).Seconds()
		bucket.tokens = min(limitPerMinute, bucket.tokens+elapsed*rate)
		bucket.lastRefill = t

		if bucket.tokens < 1 {
			mu.Unlock()
			c.Header("Retry-After", "60")
			platformerrors.WriteRateLimited(c, "Too many requests")
			return
		}
		bucket.tokens--
		mu.Unlock()

		c.Next()
	}
}

func rateKey(c *gin.Context) string {
	raw := c.ClientIP()
	if raw == "" {
		return "anonymous"
	}
	if ip := net.ParseIP(raw); ip != nil {
		return "ip:" + ip.String()
	}
	return "ip:" + raw
}
