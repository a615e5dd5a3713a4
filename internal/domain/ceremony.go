package domain

import (
	"context"
	"time"
)

// Ceremony is one event of a wedding (e.g. the church service, the reception).
// swagger:model Ceremony
type Ceremony struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Title     string    `json:"title"`
	DateTime  time.Time `json:"date_time"`
	Venue     string    `json:"venue"`
	MapURL    *string   `json:"map_url"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// CeremonyUpdate holds the mutable ceremony fields. Nil means unchanged.
type CeremonyUpdate struct {
	Title    *string
	DateTime *time.Time
	Venue    *string
	MapURL   *string
	Notes    *string
}

// CeremonyRepository defines storage operations for ceremonies.
type CeremonyRepository interface {
	Create(ctx context.Context, c *Ceremony) error
	ListByClientID(ctx context.Context, clientID string) ([]*Ceremony, error)
	Update(ctx context.Context, clientID, id string, u CeremonyUpdate) (*Ceremony, error)
	Delete(ctx context.Context, clientID, id string) error
}

// CeremonyService defines admin operations on a client's ceremonies.
type CeremonyService interface {
	Add(ctx context.Context, c *Ceremony) error
	List(ctx context.Context, clientID string) ([]*Ceremony, error)
	Update(ctx context.Context, clientID, id string, u CeremonyUpdate) (*Ceremony, error)
	Delete(ctx context.Context, clientID, id string) error
}
