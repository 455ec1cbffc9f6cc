package main

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/internal/pkg/middleware"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

// partnerChain guards the partner groups. The limiter runs before the
// secret check so rejected tokens are counted too.
func partnerChain(configs *models.Config, redisClient *redis.Client) []echo.MiddlewareFunc {
	var chain []echo.MiddlewareFunc
	if configs.RateLimit.Enabled {
		chain = append(chain,
			middleware.IPRateLimiter("partner", configs.RateLimit.Limit, configs.RateLimit.Period, redisClient))
	}
	return append(chain, middleware.PartnerAuth(configs.Partner.APISecret))
}
