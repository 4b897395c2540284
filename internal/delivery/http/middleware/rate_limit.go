package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for one limited route group
type RateLimitConfig struct {
	// Requests per window
	Limit  int
	Window time.Duration
	// Default: client IP
	KeyFunc func(*gin.Context) string
	// Redis key prefix, also keeps in-memory counters of different groups apart
	KeyPrefix string
	// Reject instead of falling back to memory when Redis errors
	FailClosed bool
}

// GlobalRateLimitConfig applies to every /api route.
func GlobalRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
		KeyFunc:   clientIP,
	}
}

// AuthRateLimitConfig is the strict limit for /login and /signup.
func AuthRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:auth:",
		FailClosed: true,
		KeyFunc:    clientIP,
	}
}

// UploadRateLimitConfig bounds attachment uploads per authenticated user,
// falling back to the client IP on public routes such as /signup.
func UploadRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:upload:",
		KeyFunc: func(c *gin.Context) string {
			if id := c.GetInt64(string(domain.KeyUserID)); id > 0 {
				return "user:" + strconv.FormatInt(id, 10)
			}
			return "ip:" + c.ClientIP()
		},
	}
}

func clientIP(c *gin.Context) string {
	return c.ClientIP()
}

// Atomic increment with TTL on first hit.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds. Returns {count, ttl}.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

// RateLimiter counts requests in Redis when a client is configured and in
// process memory otherwise.
type RateLimiter struct {
	redis       *goredis.Client
	entries     sync.Map
	cleanupOnce sync.Once
	now         func() time.Time
}

// NewRateLimiter accepts a nil client for memory-only limiting.
func NewRateLimiter(client *goredis.Client) *RateLimiter {
	return &RateLimiter{redis: client, now: time.Now}
}

// Middleware enforces cfg and sets X-RateLimit-* headers.
func (l *RateLimiter) Middleware(cfg RateLimitConfig) gin.HandlerFunc {
	l.cleanupOnce.Do(l.startCleanup)
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = clientIP
	}

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + cfg.KeyFunc(c)

		var (
			count   int
			resetAt time.Time
		)
		if l.redis != nil {
			var err error
			count, resetAt, err = l.checkRedis(c.Request.Context(), key, cfg)
			if err != nil {
				logger.Log.Warn("rate limit: redis unavailable",
					"request_id", c.GetString(response.RequestIDKey),
					"fail_closed", cfg.FailClosed,
					"error", err,
				)
				if cfg.FailClosed {
					response.Abort(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.")
					return
				}
				count, resetAt = l.checkMemory(key, cfg)
			}
		} else {
			count, resetAt = l.checkMemory(key, cfg)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Reset", resetAt.UTC().Format(time.RFC3339))

		if count > cfg.Limit {
			retryAfter := int(resetAt.Sub(l.now()).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Info("rate limit triggered",
				"request_id", c.GetString(response.RequestIDKey),
				"ip", c.ClientIP(),
				"path", c.FullPath(),
			)
			response.Abort(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(cfg.Limit-count))
		c.Next()
	}
}

func (l *RateLimiter) checkRedis(ctx context.Context, key string, cfg RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(cfg.Window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	result, err := l.redis.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format %T", result)
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), l.now().Add(time.Duration(ttl) * time.Second), nil
}

func (l *RateLimiter) checkMemory(key string, cfg RateLimitConfig) (int, time.Time) {
	now := l.now()
	v, _ := l.entries.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(cfg.Window)})
	entry := v.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(cfg.Window)
	}
	entry.count++

	return entry.count, entry.resetAt
}

// startCleanup evicts expired in-memory counters every few minutes.
func (l *RateLimiter) startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			now := l.now()
			l.entries.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					l.entries.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}
