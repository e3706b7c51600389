package token

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandsite/cms-api/internal/core/domain"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCodec(t *testing.T, lifetime time.Duration, clock *fakeClock) *Codec {
	t.Helper()
	c, err := NewCodec("test-secret", lifetime, WithClock(clock.Now))
	require.NoError(t, err)
	return c
}

func TestCodec_RoundTrip(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	codec := newTestCodec(t, DefaultLifetime, clock)

	for _, role := range domain.Roles {
		t.Run(string(role), func(t *testing.T) {
			in := domain.Claim{Subject: "u1", Email: "a@b.de", Role: role}

			raw, exp, err := codec.Issue(in)
			require.NoError(t, err)
			assert.Equal(t, clock.Now().Add(DefaultLifetime), exp)

			out, err := codec.Verify(raw)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestCodec_ValidUntilExpiry(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	codec := newTestCodec(t, time.Hour, clock)

	raw, _, err := codec.Issue(domain.Claim{Subject: "u1", Email: "a@b.de", Role: domain.RoleUser})
	require.NoError(t, err)

	clock.Advance(59 * time.Minute)
	_, err = codec.Verify(raw)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	_, err = codec.Verify(raw)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestCodec_ZeroLifetimeExpires(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	codec := newTestCodec(t, 0, clock)

	raw, _, err := codec.Issue(domain.Claim{Subject: "u1", Email: "a@b.de", Role: domain.RoleUser})
	require.NoError(t, err)

	clock.Advance(2 * time.Second)
	for i := 0; i < 3; i++ {
		_, err = codec.Verify(raw)
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	}
}

func TestCodec_RejectsForeignSignature(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	codec := newTestCodec(t, time.Hour, clock)
	other, err := NewCodec("other-secret", time.Hour, WithClock(clock.Now))
	require.NoError(t, err)

	raw, _, err := other.Issue(domain.Claim{Subject: "u1", Email: "a@b.de", Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = codec.Verify(raw)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestCodec_RejectsMalformed(t *testing.T) {
	codec := newTestCodec(t, time.Hour, &fakeClock{t: time.Now()})

	for _, raw := range []string{"", "abc", "a.b.c", "eyJhbGciOiJIUzI1NiJ9.e30."} {
		_, err := codec.Verify(raw)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid, "token %q", raw)
	}
}

func TestCodec_RejectsTamperedPayload(t *testing.T) {
	codec := newTestCodec(t, time.Hour, &fakeClock{t: time.Now()})

	raw, _, err := codec.Issue(domain.Claim{Subject: "u1", Email: "a@b.de", Role: domain.RoleUser})
	require.NoError(t, err)

	// Flip one character in the payload segment.
	b := []byte(raw)
	dot := 0
	for i, ch := range b {
		if ch == '.' {
			dot = i
			break
		}
	}
	if b[dot+5] == 'A' {
		b[dot+5] = 'B'
	} else {
		b[dot+5] = 'A'
	}

	_, err = codec.Verify(string(b))
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestCodec_RejectsOtherAlgorithms(t *testing.T) {
	codec := newTestCodec(t, time.Hour, &fakeClock{t: time.Now()})

	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub":  "u1",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	raw, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = codec.Verify(raw)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestCodec_RejectsUnknownRoleAndMissingExpiry(t *testing.T) {
	codec := newTestCodec(t, time.Hour, &fakeClock{t: time.Now()})

	cases := map[string]jwt.MapClaims{
		"unknown role": {"sub": "u1", "role": "root", "exp": time.Now().Add(time.Hour).Unix()},
		"no subject":   {"role": "user", "exp": time.Now().Add(time.Hour).Unix()},
		"no expiry":    {"sub": "u1", "role": "user"},
	}
	for name, mc := range cases {
		t.Run(name, func(t *testing.T) {
			raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString([]byte("test-secret"))
			require.NoError(t, err)

			_, err = codec.Verify(raw)
			assert.ErrorIs(t, err, domain.ErrTokenInvalid)
		})
	}
}

func TestCodec_IssueValidation(t *testing.T) {
	codec := newTestCodec(t, time.Hour, &fakeClock{t: time.Now()})

	_, _, err := codec.Issue(domain.Claim{Subject: "u1", Role: "root"})
	assert.Error(t, err)

	_, _, err = codec.Issue(domain.Claim{Role: domain.RoleUser})
	assert.Error(t, err)
}

func TestNewCodec_RequiresSecret(t *testing.T) {
	_, err := NewCodec("", time.Hour)
	assert.ErrorIs(t, err, domain.ErrMissingSecret)

	_, err = NewCodec("s", -time.Second)
	assert.Error(t, err)
}

func TestClaimContext(t *testing.T) {
	_, ok := ClaimFrom(context.Background())
	assert.False(t, ok)

	want := domain.Claim{Subject: "u1", Email: "a@b.de", Role: domain.RoleMember}
	got, ok := ClaimFrom(WithClaim(context.Background(), want))
	require.True(t, ok)
	assert.Equal(t, want, got)
}
