package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// RateLimiter is a fixed-window counter backed by redis. The window is keyed by the
// authenticated user when available, otherwise by client IP, so one abusive client
// cannot exhaust the budget of everyone behind the same NAT.
type RateLimiter struct {
	redis  *redis.Client
	limit  int
	window time.Duration
}

func NewRateLimiter(redisClient *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{redis: redisClient, limit: limit, window: window}
}

// Key derives the redis key for a caller in the current window.
func (rl *RateLimiter) Key(clientIP string, userID *uuid.UUID, now time.Time) string {
	subject := clientIP
	if userID != nil {
		subject = userID.String()
	}
	window := now.Unix() / int64(rl.window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%d", subject, window)
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID *uuid.UUID
		if v, ok := c.Get(UserIDKey); ok {
			if id, ok := v.(uuid.UUID); ok {
				userID = &id
			}
		}

		key := rl.Key(c.ClientIP(), userID, time.Now())
		ctx := context.Background()

		count, err := rl.redis.Incr(ctx, key).Result()
		if err != nil {
			// redis being down must not take the API with it
			c.Next()
			return
		}
		if count == 1 {
			rl.redis.Expire(ctx, key, rl.window)
		}

		if count > int64(rl.limit) {
			c.Header("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
