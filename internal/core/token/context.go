package token

import (
	"context"

	"github.com/bandsite/cms-api/internal/core/domain"
)

type claimKey struct{}

// WithClaim returns a copy of ctx carrying claim.
func WithClaim(ctx context.Context, claim domain.Claim) context.Context {
	return context.WithValue(ctx, claimKey{}, claim)
}

// ClaimFrom returns the claim attached by the authentication middleware.
func ClaimFrom(ctx context.Context) (domain.Claim, bool) {
	claim, ok := ctx.Value(claimKey{}).(domain.Claim)
	return claim, ok
}
