package postgres

import (
	"context"
	"database/sql"

	"weddinginvite/internal/domain"
)

type rsvpRepository struct {
	DB *sql.DB
}

// NewRSVPRepository returns a domain.RSVPRepository implemented with Postgres.
func NewRSVPRepository(db *sql.DB) domain.RSVPRepository {
	return &rsvpRepository{DB: db}
}

// Create inserts the RSVP and fills in the generated id and created_at.
// No uniqueness is enforced; the same guest may reply several times.
func (r *rsvpRepository) Create(ctx context.Context, rsvp *domain.RSVP) error {
	query := `
		INSERT INTO rsvps (client_id, name, email, response, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query, rsvp.ClientID, rsvp.Name, rsvp.Email, rsvp.Response, rsvp.Message).
		Scan(&rsvp.ID, &rsvp.CreatedAt)
}

func (r *rsvpRepository) ListByClientID(ctx context.Context, clientID string, p domain.PaginationParams) ([]*domain.RSVP, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM rsvps WHERE client_id = $1`, clientID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, client_id, name, email, response, message, created_at
		FROM rsvps
		WHERE client_id = $1
		ORDER BY created_at DESC
	`
	args := []any{clientID}
	if limit := p.Limit(); limit > 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, p.Offset())
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	rsvps := make([]*domain.RSVP, 0)
	for rows.Next() {
		rsvp := &domain.RSVP{}
		var email, message sql.NullString
		if err := rows.Scan(&rsvp.ID, &rsvp.ClientID, &rsvp.Name, &email, &rsvp.Response, &message, &rsvp.CreatedAt); err != nil {
			return nil, 0, err
		}
		if email.Valid {
			rsvp.Email = &email.String
		}
		if message.Valid {
			rsvp.Message = &message.String
		}
		rsvps = append(rsvps, rsvp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return rsvps, total, nil
}
