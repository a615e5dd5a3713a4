package services

import (
	"context"
	"time"

	"weddinginvite/internal/domain"
)

type guestbookService struct {
	clientRepo     domain.ClientRepository
	rsvpRepo       domain.RSVPRepository
	templateRepo   domain.TemplateRepository
	contextTimeout time.Duration
}

func NewGuestbookService(clientRepo domain.ClientRepository, rsvpRepo domain.RSVPRepository, templateRepo domain.TemplateRepository, timeout time.Duration) domain.GuestbookService {
	return &guestbookService{
		clientRepo:     clientRepo,
		rsvpRepo:       rsvpRepo,
		templateRepo:   templateRepo,
		contextTimeout: timeout,
	}
}

// ListRSVPs returns the client's replies, newest first.
func (s *guestbookService) ListRSVPs(ctx context.Context, clientID string, p domain.PaginationParams) ([]*domain.RSVP, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := clientByID(ctx, s.clientRepo, clientID); err != nil {
		return nil, 0, err
	}
	rsvps, total, err := s.rsvpRepo.ListByClientID(ctx, clientID, p)
	if err != nil {
		return nil, 0, domain.Upstream("list rsvps", err)
	}
	if rsvps == nil {
		rsvps = []*domain.RSVP{}
	}
	return rsvps, total, nil
}

func (s *guestbookService) ListTemplates(ctx context.Context) ([]*domain.Template, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, domain.Upstream("list templates", err)
	}
	if templates == nil {
		templates = []*domain.Template{}
	}
	return templates, nil
}
