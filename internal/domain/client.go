package domain

import (
	"context"
	"time"
)

// Client is a couple whose invitation is hosted on the platform.
// swagger:model Client
type Client struct {
	ID           string    `json:"id"`
	CoupleName   string    `json:"couple_name"`
	ContactEmail string    `json:"contact_email"`
	Slug         string    `json:"slug"`
	TemplateID   string    `json:"template_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewClient returns a new Client with the given fields. ID is set by the repository on create.
func NewClient(coupleName, contactEmail, slug, templateID string, createdAt time.Time) *Client {
	return &Client{
		CoupleName:   coupleName,
		ContactEmail: contactEmail,
		Slug:         slug,
		TemplateID:   templateID,
		CreatedAt:    createdAt,
	}
}

// ClientUpdate holds the mutable client fields. Nil means unchanged; the slug
// is never updated so published links keep working.
type ClientUpdate struct {
	CoupleName   *string
	ContactEmail *string
	TemplateID   *string
}

// ClientRepository defines storage operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id string) (*Client, error)
	GetBySlug(ctx context.Context, slug string) (*Client, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, p PaginationParams) ([]*Client, int, error)
	Update(ctx context.Context, id string, u ClientUpdate) (*Client, error)
}

// SlugAllocator picks a slug for a new client that no existing client uses.
type SlugAllocator interface {
	Allocate(ctx context.Context, base string) (string, error)
}

// ClientService defines admin operations on clients.
type ClientService interface {
	List(ctx context.Context, p PaginationParams) ([]*Client, int, error)
	Get(ctx context.Context, id string) (*Client, error)
	Create(ctx context.Context, c *Client) error
	Update(ctx context.Context, id string, u ClientUpdate) (*Client, error)
}
