package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type rateLimiter struct {
	requests map[string]*clientRequest
	mu       sync.Mutex
	limit    int
	window   time.Duration
}

type clientRequest struct {
	count     int
	resetTime time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		requests: make(map[string]*clientRequest),
		limit:    limit,
		window:   window,
	}
}

// RateLimiter allows limit requests per client IP per minute. Expired
// clients are swept until ctx is cancelled.
func RateLimiter(ctx context.Context, limit int) gin.HandlerFunc {
	rl := newRateLimiter(limit, time.Minute)
	go rl.sweep(ctx, time.Minute)
	return rl.handle
}

func (rl *rateLimiter) sweep(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.cleanup()
		}
	}
}

func (rl *rateLimiter) handle(c *gin.Context) {
	ip := c.ClientIP()
	now := time.Now()

	rl.mu.Lock()
	client, exists := rl.requests[ip]
	if !exists || now.After(client.resetTime) {
		rl.requests[ip] = &clientRequest{count: 1, resetTime: now.Add(rl.window)}
		rl.mu.Unlock()
		c.Next()
		return
	}

	if client.count >= rl.limit {
		retry := client.resetTime.Sub(now).Seconds()
		rl.mu.Unlock()
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error":       "Rate limit exceeded",
			"retry_after": retry,
		})
		return
	}

	client.count++
	rl.mu.Unlock()
	c.Next()
}

func (rl *rateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for ip, client := range rl.requests {
		if now.After(client.resetTime) {
			delete(rl.requests, ip)
		}
	}
}
