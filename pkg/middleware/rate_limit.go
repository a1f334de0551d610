package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// windowCounter increments key and returns its count in the current window.
type windowCounter func(ctx context.Context, key string, window time.Duration) (int64, error)

// RateLimitMiddleware is a fixed-window limiter keyed by limit, window, route
// and principal (or client IP for anonymous callers). A nil client disables
// limiting.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	if redisClient == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return rateLimit(redisCounter(redisClient), limit, window)
}

func redisCounter(redisClient *redis.Client) windowCounter {
	return func(ctx context.Context, key string, window time.Duration) (int64, error) {
		pipe := redisClient.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			return 0, err
		}
		return incr.Val(), nil
	}
}

// rateLimitKey scopes the counter to one limiter so a route-level limiter
// stacked under a group limiter never shares its count.
func rateLimitKey(limit int, window time.Duration, route, subject string) string {
	return fmt.Sprintf("rate_limit:%d/%s:%s:%s", limit, window, route, subject)
}

func rateLimit(count windowCounter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.GetString(ContextUserID)
		if subject == "" {
			subject = c.ClientIP()
		}

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		n, err := count(c.Request.Context(), rateLimitKey(limit, window, route, subject), window)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
			c.Abort()
			return
		}

		remaining := int64(limit) - n
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if n > int64(limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
