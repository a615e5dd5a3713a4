package domain

import "context"

// Principal is an authenticated admin as reported by the identity provider.
type Principal struct {
	UserID string
	Email  string
}

// TokenVerifier verifies a bearer token and returns the authenticated principal.
// Rejected tokens are reported as KindUnauthorized and provider failures as
// KindUpstream.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}
