package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aulaview/aulaview-backend/internal/response"
)

// RateLimiter is a fixed-window per-IP request counter. Every cache miss on
// the lessons endpoints fans out to the upstream scheduling API, so the API
// surface is capped per client.
type RateLimiter struct {
	mu     sync.Mutex
	counts map[string]*window
	limit  int
	period time.Duration
}

type window struct {
	hits    int
	resetAt time.Time
}

// NewRateLimiter creates a RateLimiter allowing limit requests per period
// per client IP.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		counts: make(map[string]*window),
		limit:  limit,
		period: period,
	}

	// Drop stale windows so idle IPs do not accumulate.
	go func() {
		for range time.Tick(period) {
			rl.cleanup()
		}
	}()

	return rl
}

// Middleware returns a Gin middleware that rate-limits requests by IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rl.mu.Lock()
		w, ok := rl.counts[ip]
		if !ok || now.After(w.resetAt) {
			w = &window{resetAt: now.Add(rl.period)}
			rl.counts[ip] = w
		}
		w.hits++
		exceeded := w.hits > rl.limit
		rl.mu.Unlock()

		if exceeded {
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := time.Now()
	for ip, w := range rl.counts {
		if now.After(w.resetAt) {
			delete(rl.counts, ip)
		}
	}
}
