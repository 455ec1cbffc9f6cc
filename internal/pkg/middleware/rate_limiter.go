package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/constants"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // Key prefix for Redis
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
}

// RateLimiterMiddleware counts requests per route and client IP in fixed
// windows. A Redis failure lets the request through; rate limiting must not
// take the partner API down with it.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), c.RealIP())

			count64, err := config.RedisClient.Incr(ctx, key).Result()
			if err != nil {
				logger.Warn("Rate limiter unavailable", logger.Err(err), logger.String("key", config.Key))
				return next(c)
			}
			if count64 == 1 {
				if err := config.RedisClient.Expire(ctx, key, config.Period).Err(); err != nil {
					logger.Warn("Failed to set rate limit window", logger.Err(err), logger.String("key", config.Key))
				}
			}

			count := int(count64)
			remaining := config.Limit - count
			if remaining < 0 {
				remaining = 0
			}
			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			header.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if count > config.Limit {
				reset, err := config.RedisClient.TTL(ctx, key).Result()
				if err != nil || reset < 0 {
					reset = config.Period
				}
				header.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(reset).Unix(), 10))
				header.Set("Retry-After", strconv.FormatInt(int64(reset.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, apperrors.CauseRateLimited, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}

// IPRateLimiter creates a simple IP-based rate limiter
func IPRateLimiter(prefix string, limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         fmt.Sprintf(constants.KeyRateLimit, prefix),
		Limit:       limit,
		Period:      period,
	})
}
