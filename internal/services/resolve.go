package services

import (
	"context"
	"errors"

	"weddinginvite/internal/domain"
)

// Caller-facing messages for an unresolved client. The invitation page and
// the other public and admin paths report the same failure differently.
const (
	msgInvitationNotFound = "Invitation not found"
	msgClientNotFound     = "Client not found"
)

// clientBySlug resolves a public slug to its client, reporting a missing
// client as NotFound with notFoundMsg.
func clientBySlug(ctx context.Context, repo domain.ClientRepository, slug, notFoundMsg string) (*domain.Client, error) {
	client, err := repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound(notFoundMsg)
		}
		return nil, domain.Upstream("get client", err)
	}
	return client, nil
}

func clientByID(ctx context.Context, repo domain.ClientRepository, id string) (*domain.Client, error) {
	client, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound(msgClientNotFound)
		}
		return nil, domain.Upstream("get client", err)
	}
	return client, nil
}
