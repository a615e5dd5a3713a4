package postgres

import (
	"context"
	"database/sql"

	"weddinginvite/internal/domain"
)

type blessingRepository struct {
	DB *sql.DB
}

// NewBlessingRepository returns a domain.BlessingRepository implemented with Postgres.
func NewBlessingRepository(db *sql.DB) domain.BlessingRepository {
	return &blessingRepository{DB: db}
}

func (r *blessingRepository) Create(ctx context.Context, b *domain.Blessing) error {
	query := `
		INSERT INTO blessings (client_id, name, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.DB.QueryRowContext(ctx, query, b.ClientID, b.Name, b.Message).Scan(&b.ID, &b.CreatedAt)
}

func (r *blessingRepository) ListByClientID(ctx context.Context, clientID string) ([]*domain.Blessing, error) {
	query := `
		SELECT id, client_id, name, message, created_at
		FROM blessings
		WHERE client_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blessings := make([]*domain.Blessing, 0)
	for rows.Next() {
		b := &domain.Blessing{}
		if err := rows.Scan(&b.ID, &b.ClientID, &b.Name, &b.Message, &b.CreatedAt); err != nil {
			return nil, err
		}
		blessings = append(blessings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return blessings, nil
}
