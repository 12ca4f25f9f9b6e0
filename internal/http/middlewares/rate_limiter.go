package middleware

import (
	"net/http"
	"time"

	charmLog "github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"activity-tracker.com/activity-tracker/internal/limiter"
)

// RateLimiter allows limit requests per client IP per window. When the store
// is unreachable the request is let through and the failure logged.
func RateLimiter(store limiter.Store, limit int, window time.Duration, logger *charmLog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			count, err := store.Hit(c.Request().Context(), c.RealIP(), window)
			if err != nil {
				logger.Warn("rate limiter unavailable", "err", err)
				return next(c)
			}

			if count > int64(limit) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
