package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/token"
)

func newCodec(t *testing.T, now func() time.Time) *token.Codec {
	t.Helper()
	codec, err := token.NewCodec("secret", time.Hour, token.WithClock(now))
	require.NoError(t, err)
	return codec
}

func newContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func requireKind(t *testing.T, err error, kind domain.Kind) *domain.Error {
	t.Helper()
	var appErr *domain.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, kind, appErr.Kind)
	return appErr
}

func TestAuthenticate_ValidToken(t *testing.T) {
	codec := newCodec(t, time.Now)
	want := domain.Claim{Subject: "u1", Email: "a@b.de", Role: domain.RoleAdmin}
	signed, _, err := codec.Issue(want)
	require.NoError(t, err)

	c, rec := newContext("Bearer " + signed)

	called := false
	handler := Authenticate(codec)(func(c echo.Context) error {
		called = true
		got, ok := token.ClaimFrom(c.Request().Context())
		require.True(t, ok, "claim not attached")
		assert.Equal(t, want, got)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.True(t, called, "next not called")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_RejectsBadHeaders(t *testing.T) {
	codec := newCodec(t, time.Now)
	signed, _, err := codec.Issue(domain.Claim{Subject: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	cases := map[string]string{
		"missing":         "",
		"other scheme":    "Token " + signed,
		"lower case":      "bearer " + signed,
		"no space":        "Bearer" + signed,
		"empty token":     "Bearer ",
		"only whitespace": "Bearer   ",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newContext(header)
			handler := Authenticate(codec)(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			appErr := requireKind(t, handler(c), domain.KindUnauthorized)
			assert.Equal(t, domain.MsgUnauthorized, appErr.Message)
		})
	}
}

func TestAuthenticate_PropagatesCodecErrors(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	codec := newCodec(t, func() time.Time { return now })
	signed, _, err := codec.Issue(domain.Claim{Subject: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	t.Run("invalid", func(t *testing.T) {
		c, _ := newContext("Bearer not-a-token")
		err := Authenticate(codec)(func(echo.Context) error { return nil })(c)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		later := newCodec(t, func() time.Time { return now.Add(2 * time.Hour) })
		c, _ := newContext("Bearer " + signed)
		err := Authenticate(later)(func(echo.Context) error { return nil })(c)
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})
}
