package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/chokka/chokka-api/libs/go/types/api/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL         = 10 * time.Minute
	defaultCleanupInterval = 5 * time.Minute
)

// RateLimiter is a per-client token bucket limiter
type RateLimiter struct {
	limiters sync.Map
	// rate is the number of requests per second allowed
	rate float64
	// burst is the maximum burst size
	burst int

	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

type limiterEntry struct {
	limiter *rate.Limiter
	mu      sync.Mutex
	seen    time.Time
}

func (e *limiterEntry) touch(now time.Time) {
	e.mu.Lock()
	e.seen = now
	e.mu.Unlock()
}

func (e *limiterEntry) idleSince(now time.Time) time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return now.Sub(e.seen)
}

// NewRateLimiter creates a limiter allowing requestsPerSecond with the given
// burst per client. Call Stop to end its cleanup goroutine.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		rate:            requestsPerSecond,
		burst:           burst,
		cleanupInterval: defaultCleanupInterval,
		stop:            make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// Stop ends the background cleanup
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.evictIdle(now)
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.limiters.Range(func(key, value interface{}) bool {
		if entry, ok := value.(*limiterEntry); ok && entry.idleSince(now) > limiterIdleTTL {
			rl.limiters.Delete(key)
		}
		return true
	})
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := time.Now()
	if val, ok := rl.limiters.Load(key); ok {
		entry := val.(*limiterEntry)
		entry.touch(now)
		return entry.limiter
	}

	entry := &limiterEntry{limiter: rate.NewLimiter(rate.Limit(rl.rate), rl.burst), seen: now}
	actual, _ := rl.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry).limiter
}

// clientKey identifies the caller. Once RequireAdmin has stored claims the
// caller is keyed as the admin, otherwise by IP.
func clientKey(c *gin.Context) string {
	if _, ok := c.Get(adminClaimsKey); ok {
		return "admin"
	}
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	return "ip:" + ip
}

// Middleware returns a Gin handler enforcing the limit
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		key := clientKey(c)
		limiter := rl.getLimiter(key)
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.burst))

		if !limiter.Allow() {
			LogWithCorrelationID(c.Request.Context()).Warn("Rate limit exceeded",
				zap.String("client", key),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)

			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, responses.ErrorResponse{
				Success:       false,
				Error:         "Too many requests. Please try again later.",
				CorrelationID: GetCorrelationID(c),
			})
			return
		}

		remaining := int(limiter.Tokens())
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Next()
	}
}

// Default limits. The strict limiter guards checkout, coupon checks and
// admin login. The admin limiter runs after RequireAdmin, so every
// authenticated admin request draws from one bucket.
const (
	DefaultRate  = 50
	DefaultBurst = 100
	StrictRate   = 0.2
	StrictBurst  = 5
	AdminRate    = 20
	AdminBurst   = 60
)
