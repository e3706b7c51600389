package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/bandsite/cms-api/internal/api/metrics"
	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/token"
)

// Authorize lets a request through only when the authenticated role is one of
// allowedRoles. It must run after Authenticate.
func Authorize(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claim, ok := token.ClaimFrom(c.Request().Context())
			if !ok {
				metrics.AuthFailuresTotal.WithLabelValues("no_claim").Inc()
				return domain.Unauthorized(domain.MsgUnauthorized)
			}
			if _, ok := allowed[claim.Role]; !ok {
				metrics.AuthFailuresTotal.WithLabelValues("role_denied").Inc()
				return domain.Forbidden(domain.MsgForbidden)
			}
			return next(c)
		}
	}
}
