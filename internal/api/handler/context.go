package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
	"github.com/bandsite/cms-api/internal/core/token"
)

const msgInvalidPayload = "Ungültige Anfrage"

// ctxClaim returns the claim attached by the Authenticate middleware. A
// missing claim means the route was registered without it.
func ctxClaim(c echo.Context) (domain.Claim, error) {
	claim, ok := token.ClaimFrom(c.Request().Context())
	if !ok {
		return domain.Claim{}, domain.Unauthorized(domain.MsgUnauthorized)
	}
	return claim, nil
}

// bindValid decodes the request into req and runs its schema. Decode
// failures are 400, schema failures reach the error handler as
// validator.ValidationErrors.
func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.BadRequest(msgInvalidPayload)
	}
	return c.Validate(req)
}

// pageQuery reads ?page= and ?limit=. Out of range values are clamped.
func pageQuery(c echo.Context) (ports.Page, error) {
	var p ports.Page
	err := echo.QueryParamsBinder(c).
		Int("page", &p.Page).
		Int("limit", &p.Limit).
		BindError()
	if err != nil {
		var be *echo.BindingError
		if errors.As(err, &be) {
			return p, domain.BadRequest(be.Field + " muss eine Zahl sein")
		}
		return p, domain.BadRequest(msgInvalidPayload)
	}
	return p.Normalize(), nil
}
