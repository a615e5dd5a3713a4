package domain

import (
	"context"
	"time"
)

// DefaultCompanyName is shown in invitation footers until an admin saves settings.
const DefaultCompanyName = "InviteLeaf"

// Settings holds the company details shown in every invitation footer.
// There is at most one settings row.
// swagger:model Settings
type Settings struct {
	CompanyName    string    `json:"company_name"`
	CompanyPhone   string    `json:"company_phone"`
	CompanyEmail   string    `json:"company_email"`
	CompanyWebsite string    `json:"company_website"`
	CompanyAddress string    `json:"company_address"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DefaultSettings returns the settings used before any have been saved.
func DefaultSettings() *Settings {
	return &Settings{CompanyName: DefaultCompanyName}
}

// SettingsRepository reads and writes the single settings row.
// Get returns ErrNotFound when nothing has been saved yet.
type SettingsRepository interface {
	Get(ctx context.Context) (*Settings, error)
	Upsert(ctx context.Context, s *Settings) error
}

// SettingsService defines operations on the company settings.
type SettingsService interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, s *Settings) (*Settings, error)
}
