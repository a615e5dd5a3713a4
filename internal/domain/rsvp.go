package domain

import (
	"context"
	"time"
)

// Expected RSVP responses. The response is stored as free text and is not
// checked against these values.
const (
	RSVPResponseYes   = "yes"
	RSVPResponseNo    = "no"
	RSVPResponseMaybe = "maybe"
)

// RSVP is a guest's reply to an invitation.
// swagger:model RSVP
type RSVP struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Response  string    `json:"response"`
	Message   *string   `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// RSVPRepository defines storage operations for RSVPs.
type RSVPRepository interface {
	Create(ctx context.Context, r *RSVP) error
	ListByClientID(ctx context.Context, clientID string, p PaginationParams) ([]*RSVP, int, error)
}
