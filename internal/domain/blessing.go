package domain

import (
	"context"
	"time"
)

// Blessing is a short public message left by a guest on the invitation page.
// swagger:model Blessing
type Blessing struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// BlessingRepository defines storage operations for blessings.
type BlessingRepository interface {
	Create(ctx context.Context, b *Blessing) error
	// ListByClientID returns the client's blessings, newest first.
	ListByClientID(ctx context.Context, clientID string) ([]*Blessing, error)
}
