package domain

import "context"

// Template is a visual theme for invitation pages. Config is a free-form
// mapping interpreted by the frontend.
// swagger:model Template
type Template struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Slug   string         `json:"slug"`
	Config map[string]any `json:"config"`
}

// TemplateRepository defines read operations for templates.
type TemplateRepository interface {
	GetByID(ctx context.Context, id string) (*Template, error)
	List(ctx context.Context) ([]*Template, error)
}
