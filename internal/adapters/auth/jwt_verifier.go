package auth

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"weddinginvite/internal/domain"
)

// supabaseClaims is the subset of a Supabase access token we read.
type supabaseClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

type jwtVerifier struct {
	secret   []byte
	audience string
}

// NewJWTVerifier returns a TokenVerifier that checks HS256 access tokens signed
// with the project's JWT secret. An empty audience skips the aud check.
func NewJWTVerifier(secret, audience string) domain.TokenVerifier {
	return &jwtVerifier{secret: []byte(secret), audience: audience}
}

func (v *jwtVerifier) Verify(_ context.Context, token string) (*domain.Principal, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}
	claims := &supabaseClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, domain.Unauthorized("invalid or expired token", err)
	}
	if claims.Subject == "" {
		return nil, domain.Unauthorized("invalid or expired token", errors.New("token has no subject"))
	}
	return &domain.Principal{UserID: claims.Subject, Email: claims.Email}, nil
}
