package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bandsite/cms-api/internal/api/metrics"
	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
	"github.com/bandsite/cms-api/internal/core/token"
)

const bearerPrefix = "Bearer "

// Authenticate verifies the bearer token and attaches its claim to the
// request context. Verification errors are passed on unchanged.
func Authenticate(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return domain.Unauthorized(domain.MsgUnauthorized)
			}

			raw, ok := strings.CutPrefix(authHeader, bearerPrefix)
			if !ok || strings.TrimSpace(raw) == "" {
				metrics.AuthFailuresTotal.WithLabelValues("bad_scheme").Inc()
				return domain.Unauthorized(domain.MsgUnauthorized)
			}

			claim, err := verifier.Verify(raw)
			if err != nil {
				reason := "token_invalid"
				if errors.Is(err, domain.ErrTokenExpired) {
					reason = "token_expired"
				}
				metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
				return err
			}

			req := c.Request()
			c.SetRequest(req.WithContext(token.WithClaim(req.Context(), claim)))
			return next(c)
		}
	}
}
