package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"weddinginvite/internal/domain"
)

const ceremonyColumns = `id, client_id, title, date_time, venue, map_url, notes, created_at`

type ceremonyRepository struct {
	DB *sql.DB
}

// NewCeremonyRepository returns a domain.CeremonyRepository implemented with Postgres.
func NewCeremonyRepository(db *sql.DB) domain.CeremonyRepository {
	return &ceremonyRepository{DB: db}
}

func scanCeremony(row rowScanner) (*domain.Ceremony, error) {
	c := &domain.Ceremony{}
	var mapURL, notes sql.NullString
	if err := row.Scan(&c.ID, &c.ClientID, &c.Title, &c.DateTime, &c.Venue, &mapURL, &notes, &c.CreatedAt); err != nil {
		return nil, err
	}
	if mapURL.Valid {
		c.MapURL = &mapURL.String
	}
	if notes.Valid {
		c.Notes = &notes.String
	}
	return c, nil
}

func (r *ceremonyRepository) Create(ctx context.Context, c *domain.Ceremony) error {
	query := `
		INSERT INTO ceremonies (client_id, title, date_time, venue, map_url, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, c.ClientID, c.Title, c.DateTime, c.Venue, c.MapURL, c.Notes, c.CreatedAt).
		Scan(&c.ID)
}

func (r *ceremonyRepository) ListByClientID(ctx context.Context, clientID string) ([]*domain.Ceremony, error) {
	query := `SELECT ` + ceremonyColumns + ` FROM ceremonies WHERE client_id = $1 ORDER BY date_time ASC`
	rows, err := r.DB.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ceremonies := make([]*domain.Ceremony, 0)
	for rows.Next() {
		c, err := scanCeremony(rows)
		if err != nil {
			return nil, err
		}
		ceremonies = append(ceremonies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ceremonies, nil
}

func (r *ceremonyRepository) Update(ctx context.Context, clientID, id string, u domain.CeremonyUpdate) (*domain.Ceremony, error) {
	var setClauses []string
	var args []any
	n := 1
	set := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}
	if u.Title != nil {
		set("title", *u.Title)
	}
	if u.DateTime != nil {
		set("date_time", *u.DateTime)
	}
	if u.Venue != nil {
		set("venue", *u.Venue)
	}
	if u.MapURL != nil {
		set("map_url", *u.MapURL)
	}
	if u.Notes != nil {
		set("notes", *u.Notes)
	}

	var query string
	if n == 1 {
		query = `SELECT ` + ceremonyColumns + ` FROM ceremonies WHERE id = $1 AND client_id = $2`
	} else {
		query = fmt.Sprintf(`
		UPDATE ceremonies SET %s
		WHERE id = $%d AND client_id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, n+1, ceremonyColumns)
	}
	args = append(args, id, clientID)
	c, err := scanCeremony(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *ceremonyRepository) Delete(ctx context.Context, clientID, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM ceremonies WHERE id = $1 AND client_id = $2`, id, clientID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
