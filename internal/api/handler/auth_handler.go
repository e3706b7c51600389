package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bandsite/cms-api/internal/api/response"
	"github.com/bandsite/cms-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a regular user account and signs it in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  response.Envelope{data=sessionResponse}
// @Failure      409   {object}  response.Envelope
// @Failure      422   {object}  response.Envelope
// @Failure      429   {object}  response.Envelope
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	session, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Message(c, http.StatusCreated, "Registrierung erfolgreich", toSession(session))
}

// Login authenticates a user and returns a token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  response.Envelope{data=sessionResponse}
// @Failure      401   {object}  response.Envelope
// @Failure      422   {object}  response.Envelope
// @Failure      429   {object}  response.Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Anmeldung erfolgreich", toSession(session))
}

// Me returns the authenticated account.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=domain.User}
// @Failure      401  {object}  response.Envelope
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claim, err := ctxClaim(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Me(c.Request().Context(), claim)
	if err != nil {
		return err
	}
	return response.OK(c, http.StatusOK, user)
}

// ChangePassword replaces the password of the authenticated account.
//
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      401   {object}  response.Envelope
// @Failure      422   {object}  response.Envelope
// @Router       /api/auth/password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	claim, err := ctxClaim(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	if err := h.authService.ChangePassword(c.Request().Context(), claim, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return response.Message(c, http.StatusOK, "Passwort geändert", nil)
}
