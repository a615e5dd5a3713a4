package postgres

import (
	"context"
	"database/sql"
	"errors"

	"weddinginvite/internal/domain"
)

const photoColumns = `id, client_id, storage_path, filename, width, height, created_at`

type photoRepository struct {
	DB *sql.DB
}

// NewPhotoRepository returns a domain.PhotoRepository implemented with Postgres.
func NewPhotoRepository(db *sql.DB) domain.PhotoRepository {
	return &photoRepository{DB: db}
}

func scanPhoto(row rowScanner) (*domain.Photo, error) {
	p := &domain.Photo{}
	var width, height sql.NullInt64
	if err := row.Scan(&p.ID, &p.ClientID, &p.StoragePath, &p.Filename, &width, &height, &p.CreatedAt); err != nil {
		return nil, err
	}
	if width.Valid {
		w := int(width.Int64)
		p.Width = &w
	}
	if height.Valid {
		h := int(height.Int64)
		p.Height = &h
	}
	return p, nil
}

func (r *photoRepository) Create(ctx context.Context, p *domain.Photo) error {
	query := `
		INSERT INTO photos (client_id, storage_path, filename, width, height, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, p.ClientID, p.StoragePath, p.Filename, p.Width, p.Height, p.CreatedAt).
		Scan(&p.ID)
}

func (r *photoRepository) ListByClientID(ctx context.Context, clientID string) ([]*domain.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE client_id = $1 ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := make([]*domain.Photo, 0)
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *photoRepository) GetByID(ctx context.Context, clientID, id string) (*domain.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE id = $1 AND client_id = $2`
	p, err := scanPhoto(r.DB.QueryRowContext(ctx, query, id, clientID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *photoRepository) Delete(ctx context.Context, clientID, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM photos WHERE id = $1 AND client_id = $2`, id, clientID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
