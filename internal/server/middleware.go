package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// rateLimiter is a fixed-window per-client limiter for write endpoints.
// Counters reset when the window rolls over.
type rateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	clients map[string]*windowCounter
}

type windowCounter struct {
	start time.Time
	count int
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	if limit <= 0 {
		limit = 120
	}
	if window <= 0 {
		window = time.Minute
	}
	return &rateLimiter{
		limit:   limit,
		window:  window,
		clients: make(map[string]*windowCounter),
	}
}

func (r *rateLimiter) allow(key string, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	counter, ok := r.clients[key]
	if !ok || now.Sub(counter.start) >= r.window {
		r.clients[key] = &windowCounter{start: now, count: 1}
		return true
	}
	if counter.count >= r.limit {
		return false
	}
	counter.count++
	return true
}

func (r *rateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apiError{Code: "rate_limited"})
			return
		}
		c.Next()
	}
}
