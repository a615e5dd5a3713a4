package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"weddinginvite/internal/domain"
)

type templateRepository struct {
	DB *sql.DB
}

// NewTemplateRepository returns a domain.TemplateRepository implemented with Postgres.
func NewTemplateRepository(db *sql.DB) domain.TemplateRepository {
	return &templateRepository{DB: db}
}

// scanTemplate decodes the JSONB config column. A config that is not a JSON
// object is reported as an upstream failure rather than a missing template.
func scanTemplate(row rowScanner) (*domain.Template, error) {
	t := &domain.Template{}
	var rawConfig []byte
	if err := row.Scan(&t.ID, &t.Name, &t.Slug, &rawConfig); err != nil {
		return nil, err
	}
	t.Config = map[string]any{}
	if len(rawConfig) > 0 {
		if err := json.Unmarshal(rawConfig, &t.Config); err != nil {
			return nil, domain.Upstream(fmt.Sprintf("malformed config for template %q", t.ID), err)
		}
		if t.Config == nil {
			t.Config = map[string]any{}
		}
	}
	return t, nil
}

func (r *templateRepository) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	t, err := scanTemplate(r.DB.QueryRowContext(ctx, `SELECT id, name, slug, config FROM templates WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *templateRepository) List(ctx context.Context) ([]*domain.Template, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, slug, config FROM templates ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]*domain.Template, 0)
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return templates, nil
}
