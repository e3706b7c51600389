package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bandsite/cms-api/internal/api/metrics"
	"github.com/bandsite/cms-api/internal/core/domain"
)

// Limiter decides whether client may make another request in scope.
type Limiter interface {
	Allow(ctx context.Context, scope, client string) (bool, error)
}

// RateLimit refuses requests over the limit with 429. When the limiter
// itself fails the request is let through and counted in
// metrics.RateLimiterErrorsTotal.
func RateLimit(limiter Limiter, scope string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), scope, c.RealIP())
			if err != nil {
				metrics.RateLimiterErrorsTotal.WithLabelValues(scope).Inc()
				log.Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !ok {
				metrics.RateLimitedTotal.WithLabelValues(scope).Inc()
				return domain.TooManyRequests()
			}
			return next(c)
		}
	}
}
