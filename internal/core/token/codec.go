// Package token issues and verifies the signed bearer credentials handed out
// at login and registration.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bandsite/cms-api/internal/core/domain"
)

// DefaultLifetime applies when the configuration does not set one.
const DefaultLifetime = 7 * 24 * time.Hour

type claims struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs claims with HS256. It holds no mutable state and is safe for
// concurrent use.
type Codec struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// Option customises a Codec.
type Option func(*Codec)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

// NewCodec returns a Codec for secret. A zero lifetime is allowed and yields
// tokens that expire immediately.
func NewCodec(secret string, lifetime time.Duration, opts ...Option) (*Codec, error) {
	if secret == "" {
		return nil, domain.ErrMissingSecret
	}
	if lifetime < 0 {
		return nil, fmt.Errorf("token lifetime must not be negative, got %s", lifetime)
	}
	c := &Codec{secret: []byte(secret), lifetime: lifetime, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Lifetime reports how long issued tokens stay valid.
func (c *Codec) Lifetime() time.Duration { return c.lifetime }

// Issue signs claim and returns the token together with its expiry.
func (c *Codec) Issue(claim domain.Claim) (string, time.Time, error) {
	if claim.Subject == "" {
		return "", time.Time{}, errors.New("issue token: empty subject")
	}
	if !claim.Role.Valid() {
		return "", time.Time{}, fmt.Errorf("issue token: invalid role %q", claim.Role)
	}

	now := c.now()
	exp := now.Add(c.lifetime)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: claim.Email,
		Role:  claim.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claim.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue token: %w", err)
	}
	return signed, exp, nil
}

// Verify returns the claim carried by raw. It fails with
// domain.ErrTokenExpired once the expiry has passed and with
// domain.ErrTokenInvalid for every other defect.
func (c *Codec) Verify(raw string) (domain.Claim, error) {
	var parsed claims
	_, err := jwt.ParseWithClaims(raw, &parsed, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Claim{}, domain.ErrTokenExpired
		}
		return domain.Claim{}, domain.ErrTokenInvalid
	}

	if parsed.Subject == "" || !parsed.Role.Valid() {
		return domain.Claim{}, domain.ErrTokenInvalid
	}

	return domain.Claim{
		Subject: parsed.Subject,
		Email:   parsed.Email,
		Role:    parsed.Role,
	}, nil
}
