package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
	"github.com/bandsite/cms-api/internal/core/token"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.Session, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.Session, error)
	meFn       func(ctx context.Context, claim domain.Claim) (*domain.User, error)
	passwordFn func(ctx context.Context, claim domain.Claim, current, next string) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.Session, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.Session, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Me(ctx context.Context, claim domain.Claim) (*domain.User, error) {
	return s.meFn(ctx, claim)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, claim domain.Claim, current, next string) error {
	return s.passwordFn(ctx, claim, current, next)
}

// newJSONContext builds a context with the package validator installed.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withClaim(c echo.Context, claim domain.Claim) {
	req := c.Request()
	c.SetRequest(req.WithContext(token.WithClaim(req.Context(), claim)))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "invalid json")
	return resp
}

func TestAuthHandler_Register_Success(t *testing.T) {
	expires := time.Date(2026, 5, 8, 12, 0, 0, 0, time.UTC)
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*ports.Session, error) {
			assert.Equal(t, ports.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret123"}, in)
			return &ports.Session{
				Token:     "signed",
				ExpiresAt: expires,
				User:      &domain.User{Name: in.Name, Email: in.Email, Role: domain.RoleUser, PasswordHash: "hash"},
			}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/api/auth/register", `{"name":"Ada","email":"ada@example.com","password":"secret123","role":"admin"}`)

	require.NoError(t, NewAuthHandler(stub).Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decode(t, rec)
	assert.Equal(t, true, resp["success"])
	data := resp["data"].(map[string]any)
	assert.Equal(t, "signed", data["token"])

	user := data["user"].(map[string]any)
	assert.Equal(t, "user", user["role"], "role in the payload is ignored")
	assert.NotContains(t, user, "password_hash")
	assert.NotContains(t, user, "PasswordHash")
}

func TestAuthHandler_Register_Invalid(t *testing.T) {
	stub := &stubAuthService{registerFn: func(context.Context, ports.RegisterInput) (*ports.Session, error) {
		t.Fatalf("service must not be called")
		return nil, nil
	}}
	c, _ := newJSONContext(http.MethodPost, "/api/auth/register", `{"email":"ada@example.com"}`)

	err := NewAuthHandler(stub).Register(c)

	var ve validator.ValidationErrors
	require.ErrorAs(t, err, &ve)
	issues := FieldIssues(ve)
	require.Len(t, issues, 2)
	assert.Equal(t, domain.FieldIssue{Field: "name", Message: "name ist erforderlich"}, issues[0])
	assert.Equal(t, "password", issues[1].Field)
}

func TestAuthHandler_Register_MalformedBody(t *testing.T) {
	c, _ := newJSONContext(http.MethodPost, "/api/auth/register", `{"name":`)

	err := NewAuthHandler(&stubAuthService{}).Register(c)

	var appErr *domain.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.KindBadRequest, appErr.Kind)
}

func TestAuthHandler_Login_PropagatesServiceError(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*ports.Session, error) {
			assert.Equal(t, "ada@example.com", email)
			return nil, domain.ErrInvalidCredentials
		},
	}
	c, _ := newJSONContext(http.MethodPost, "/api/auth/login", `{"email":"ada@example.com","password":"wrong"}`)

	err := NewAuthHandler(stub).Login(c)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthHandler_Me(t *testing.T) {
	claim := domain.Claim{Subject: "u1", Email: "ada@example.com", Role: domain.RoleMember}
	stub := &stubAuthService{
		meFn: func(_ context.Context, got domain.Claim) (*domain.User, error) {
			assert.Equal(t, claim, got)
			return &domain.User{Name: "Ada", Email: got.Email, Role: got.Role}, nil
		},
	}
	c, rec := newJSONContext(http.MethodGet, "/api/auth/me", "")
	withClaim(c, claim)

	require.NoError(t, NewAuthHandler(stub).Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "member", decode(t, rec)["data"].(map[string]any)["role"])
}

func TestAuthHandler_Me_WithoutClaim(t *testing.T) {
	c, _ := newJSONContext(http.MethodGet, "/api/auth/me", "")

	err := NewAuthHandler(&stubAuthService{}).Me(c)

	var appErr *domain.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.KindUnauthorized, appErr.Kind)
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	called := false
	stub := &stubAuthService{
		passwordFn: func(_ context.Context, claim domain.Claim, current, next string) error {
			called = true
			assert.Equal(t, "u1", claim.Subject)
			assert.Equal(t, "old-secret", current)
			assert.Equal(t, "new-secret-1", next)
			return nil
		},
	}
	c, rec := newJSONContext(http.MethodPut, "/api/auth/password", `{"current_password":"old-secret","new_password":"new-secret-1"}`)
	withClaim(c, domain.Claim{Subject: "u1", Role: domain.RoleUser})

	require.NoError(t, NewAuthHandler(stub).ChangePassword(c))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
