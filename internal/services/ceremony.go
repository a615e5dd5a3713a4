package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"weddinginvite/internal/domain"
)

const msgCeremonyNotFound = "Ceremony not found"

type ceremonyService struct {
	clientRepo     domain.ClientRepository
	ceremonyRepo   domain.CeremonyRepository
	contextTimeout time.Duration
}

func NewCeremonyService(clientRepo domain.ClientRepository, ceremonyRepo domain.CeremonyRepository, timeout time.Duration) domain.CeremonyService {
	return &ceremonyService{
		clientRepo:     clientRepo,
		ceremonyRepo:   ceremonyRepo,
		contextTimeout: timeout,
	}
}

// Add attaches c to the client c.ClientID, which must exist.
func (s *ceremonyService) Add(ctx context.Context, c *domain.Ceremony) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(c.Title) == "" {
		return domain.Validation("title is required")
	}
	if strings.TrimSpace(c.Venue) == "" {
		return domain.Validation("venue is required")
	}
	if c.DateTime.IsZero() {
		return domain.Validation("date_time is required")
	}
	if _, err := clientByID(ctx, s.clientRepo, c.ClientID); err != nil {
		return err
	}
	c.CreatedAt = time.Now().UTC()
	if err := s.ceremonyRepo.Create(ctx, c); err != nil {
		return domain.Upstream("create ceremony", err)
	}
	return nil
}

func (s *ceremonyService) List(ctx context.Context, clientID string) ([]*domain.Ceremony, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := clientByID(ctx, s.clientRepo, clientID); err != nil {
		return nil, err
	}
	ceremonies, err := s.ceremonyRepo.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, domain.Upstream("list ceremonies", err)
	}
	if ceremonies == nil {
		ceremonies = []*domain.Ceremony{}
	}
	return ceremonies, nil
}

func (s *ceremonyService) Update(ctx context.Context, clientID, id string, u domain.CeremonyUpdate) (*domain.Ceremony, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return nil, domain.Validation("title must not be empty")
	}
	if u.Venue != nil && strings.TrimSpace(*u.Venue) == "" {
		return nil, domain.Validation("venue must not be empty")
	}
	c, err := s.ceremonyRepo.Update(ctx, clientID, id, u)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound(msgCeremonyNotFound)
		}
		return nil, domain.Upstream("update ceremony", err)
	}
	return c, nil
}

func (s *ceremonyService) Delete(ctx context.Context, clientID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.ceremonyRepo.Delete(ctx, clientID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound(msgCeremonyNotFound)
		}
		return domain.Upstream("delete ceremony", err)
	}
	return nil
}
