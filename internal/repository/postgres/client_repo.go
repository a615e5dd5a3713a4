package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"weddinginvite/internal/domain"
)

const uniqueViolation = "23505"

const clientColumns = `id, couple_name, contact_email, slug, template_id, created_at`

type clientRepository struct {
	DB *sql.DB
}

// NewClientRepository returns a domain.ClientRepository implemented with Postgres.
func NewClientRepository(db *sql.DB) domain.ClientRepository {
	return &clientRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	c := &domain.Client{}
	if err := row.Scan(&c.ID, &c.CoupleName, &c.ContactEmail, &c.Slug, &c.TemplateID, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `
		INSERT INTO clients (couple_name, contact_email, slug, template_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, c.CoupleName, c.ContactEmail, c.Slug, c.TemplateID, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == uniqueViolation {
			return domain.ErrSlugTaken
		}
		return err
	}
	return nil
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// GetBySlug returns the first client with the given slug. Slugs are unique,
// so at most one row is expected.
func (r *clientRepository) GetBySlug(ctx context.Context, slug string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE slug = $1 LIMIT 1`
	c, err := scanClient(r.DB.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM clients WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *clientRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Client, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at DESC`
	var args []any
	if limit := p.Limit(); limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, p.Offset())
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, err
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

func (r *clientRepository) Update(ctx context.Context, id string, u domain.ClientUpdate) (*domain.Client, error) {
	var setClauses []string
	var args []any
	n := 1
	if u.CoupleName != nil {
		setClauses = append(setClauses, fmt.Sprintf("couple_name = $%d", n))
		args = append(args, *u.CoupleName)
		n++
	}
	if u.ContactEmail != nil {
		setClauses = append(setClauses, fmt.Sprintf("contact_email = $%d", n))
		args = append(args, *u.ContactEmail)
		n++
	}
	if u.TemplateID != nil {
		setClauses = append(setClauses, fmt.Sprintf("template_id = $%d", n))
		args = append(args, *u.TemplateID)
		n++
	}
	if n == 1 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE clients SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, clientColumns)
	c, err := scanClient(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}
