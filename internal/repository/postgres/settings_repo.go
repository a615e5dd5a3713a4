package postgres

import (
	"context"
	"database/sql"
	"errors"

	"weddinginvite/internal/domain"
)

type settingsRepository struct {
	DB *sql.DB
}

// NewSettingsRepository returns a domain.SettingsRepository implemented with Postgres.
func NewSettingsRepository(db *sql.DB) domain.SettingsRepository {
	return &settingsRepository{DB: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	query := `
		SELECT company_name, company_phone, company_email, company_website, company_address, updated_at
		FROM settings
		WHERE id = 1
	`
	s := &domain.Settings{}
	err := r.DB.QueryRowContext(ctx, query).
		Scan(&s.CompanyName, &s.CompanyPhone, &s.CompanyEmail, &s.CompanyWebsite, &s.CompanyAddress, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// Upsert writes s as the settings row and sets s.UpdatedAt.
func (r *settingsRepository) Upsert(ctx context.Context, s *domain.Settings) error {
	query := `
		INSERT INTO settings (id, company_name, company_phone, company_email, company_website, company_address, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			company_phone = EXCLUDED.company_phone,
			company_email = EXCLUDED.company_email,
			company_website = EXCLUDED.company_website,
			company_address = EXCLUDED.company_address,
			updated_at = EXCLUDED.updated_at
		RETURNING updated_at
	`
	return r.DB.QueryRowContext(ctx, query, s.CompanyName, s.CompanyPhone, s.CompanyEmail, s.CompanyWebsite, s.CompanyAddress).
		Scan(&s.UpdatedAt)
}
