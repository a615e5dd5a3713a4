package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"weddinginvite/internal/domain"
)

type settingsService struct {
	settingsRepo   domain.SettingsRepository
	contextTimeout time.Duration
}

func NewSettingsService(settingsRepo domain.SettingsRepository, timeout time.Duration) domain.SettingsService {
	return &settingsService{
		settingsRepo:   settingsRepo,
		contextTimeout: timeout,
	}
}

// loadSettings returns the saved settings, or the defaults when none were saved.
func loadSettings(ctx context.Context, repo domain.SettingsRepository) (*domain.Settings, error) {
	settings, err := repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultSettings(), nil
		}
		return nil, domain.Upstream("get settings", err)
	}
	return settings, nil
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return loadSettings(ctx, s.settingsRepo)
}

// Update replaces every settings field with the trimmed values in settings.
func (s *settingsService) Update(ctx context.Context, settings *domain.Settings) (*domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	out := &domain.Settings{
		CompanyName:    strings.TrimSpace(settings.CompanyName),
		CompanyPhone:   strings.TrimSpace(settings.CompanyPhone),
		CompanyEmail:   strings.TrimSpace(settings.CompanyEmail),
		CompanyWebsite: strings.TrimSpace(settings.CompanyWebsite),
		CompanyAddress: strings.TrimSpace(settings.CompanyAddress),
	}
	if out.CompanyName == "" {
		return nil, domain.Validation("company_name is required")
	}
	if err := s.settingsRepo.Upsert(ctx, out); err != nil {
		return nil, domain.Upstream("save settings", err)
	}
	return out, nil
}
