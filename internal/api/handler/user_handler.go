package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bandsite/cms-api/internal/api/response"
	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

// UserHandler serves account administration.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (default 1)"
// @Param        limit  query     int  false  "Page size (default 20, max 100)"
// @Success      200    {object}  response.Envelope{data=[]domain.User}
// @Failure      401    {object}  response.Envelope
// @Failure      403    {object}  response.Envelope
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}
	users, err := h.service.List(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return response.List(c, users)
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  response.Envelope{data=domain.User}
// @Failure      400  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, user)
}

// UpdateRole handles PATCH /api/users/:id/role. Admins cannot change their
// own role, whatever the payload.
//
// @Summary      Change a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "User id"
// @Param        body  body      roleRequest  true  "New role"
// @Success      200   {object}  response.Envelope{data=domain.User}
// @Failure      400   {object}  response.Envelope
// @Failure      403   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Failure      422   {object}  response.Envelope
// @Router       /api/users/{id}/role [patch]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	actor, err := ctxClaim(c)
	if err != nil {
		return err
	}

	// Checked before the payload is read so the answer never depends on it.
	self, err := actor.IsSelf(c.Param("id"))
	if err != nil {
		return err
	}
	if self {
		return domain.ErrOwnRole
	}

	var req roleRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	user, err := h.service.UpdateRole(c.Request().Context(), actor, c.Param("id"), domain.Role(req.Role))
	if err != nil {
		return err
	}
	return response.Message(c, http.StatusOK, "Rolle aktualisiert", user)
}

// Delete handles DELETE /api/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := ctxClaim(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return response.Message(c, http.StatusOK, "Benutzer gelöscht", nil)
}
