package domain

import "context"

// Invitation is the composite payload served to invitation viewers.
// Template is nil when the client references a missing template. Settings
// carries the company details for the page footer.
// swagger:model Invitation
type Invitation struct {
	Client     *Client     `json:"client"`
	Ceremonies []*Ceremony `json:"ceremonies"`
	Photos     []*Photo    `json:"photos"`
	Template   *Template   `json:"template"`
	Settings   *Settings   `json:"settings"`
}

// InvitationService serves the public invitation flow, keyed by slug.
type InvitationService interface {
	GetInvitation(ctx context.Context, slug string) (*Invitation, error)
	SubmitRSVP(ctx context.Context, slug string, rsvp *RSVP) error
	ListBlessings(ctx context.Context, slug string) ([]*Blessing, error)
	PostBlessing(ctx context.Context, slug string, b *Blessing) error
}

// GuestbookService exposes the replies recorded for a client to admins.
type GuestbookService interface {
	ListRSVPs(ctx context.Context, clientID string, p PaginationParams) ([]*RSVP, int, error)
	ListTemplates(ctx context.Context) ([]*Template, error)
}
