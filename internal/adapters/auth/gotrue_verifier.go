package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"weddinginvite/internal/domain"
)

type gotrueUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type gotrueVerifier struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewGoTrueVerifier returns a TokenVerifier that asks the Supabase auth server
// (GET <baseURL>/auth/v1/user) who the token belongs to.
func NewGoTrueVerifier(client *http.Client, baseURL, apiKey string) domain.TokenVerifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &gotrueVerifier{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
	}
}

func (v *gotrueVerifier) Verify(ctx context.Context, token string) (*domain.Principal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, domain.Upstream("create auth request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if v.apiKey != "" {
		req.Header.Set("apikey", v.apiKey)
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return nil, domain.Upstream("call auth server", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, domain.Unauthorized("invalid or expired token", nil)
	case resp.StatusCode != http.StatusOK:
		return nil, domain.Upstream("call auth server", fmt.Errorf("auth server returned status: %d", resp.StatusCode))
	}

	var user gotrueUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, domain.Upstream("decode auth user", err)
	}
	if user.ID == "" {
		return nil, domain.Unauthorized("invalid or expired token", nil)
	}
	return &domain.Principal{UserID: user.ID, Email: user.Email}, nil
}
