package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"weddinginvite/internal/domain"
)

type invitationService struct {
	clientRepo     domain.ClientRepository
	ceremonyRepo   domain.CeremonyRepository
	photoRepo      domain.PhotoRepository
	templateRepo   domain.TemplateRepository
	rsvpRepo       domain.RSVPRepository
	blessingRepo   domain.BlessingRepository
	settingsRepo   domain.SettingsRepository
	store          domain.ObjectStore
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// InvitationDeps groups the collaborators of the public invitation flow.
type InvitationDeps struct {
	Clients    domain.ClientRepository
	Ceremonies domain.CeremonyRepository
	Photos     domain.PhotoRepository
	Templates  domain.TemplateRepository
	RSVPs      domain.RSVPRepository
	Blessings  domain.BlessingRepository
	Settings   domain.SettingsRepository
	Store      domain.ObjectStore
	// Email is optional; RSVP notifications are skipped when nil.
	Email domain.EmailService
}

func NewInvitationService(deps InvitationDeps, logger *slog.Logger, timeout time.Duration) domain.InvitationService {
	return &invitationService{
		clientRepo:     deps.Clients,
		ceremonyRepo:   deps.Ceremonies,
		photoRepo:      deps.Photos,
		templateRepo:   deps.Templates,
		rsvpRepo:       deps.RSVPs,
		blessingRepo:   deps.Blessings,
		settingsRepo:   deps.Settings,
		store:          deps.Store,
		emailService:   deps.Email,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// GetInvitation resolves slug and assembles the client's ceremonies, photos,
// template and the footer settings. A missing template yields a nil Template
// and unsaved settings yield the defaults; any other failing step fails the
// whole call.
func (s *invitationService) GetInvitation(ctx context.Context, slug string) (*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	client, err := clientBySlug(ctx, s.clientRepo, slug, msgInvitationNotFound)
	if err != nil {
		return nil, err
	}

	ceremonies, err := s.ceremonyRepo.ListByClientID(ctx, client.ID)
	if err != nil {
		return nil, domain.Upstream("list ceremonies", err)
	}
	if ceremonies == nil {
		ceremonies = []*domain.Ceremony{}
	}

	photos, err := s.photoRepo.ListByClientID(ctx, client.ID)
	if err != nil {
		return nil, domain.Upstream("list photos", err)
	}

	template, err := s.templateRepo.GetByID(ctx, client.TemplateID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Upstream("get template", err)
		}
		template = nil
	}

	settings, err := loadSettings(ctx, s.settingsRepo)
	if err != nil {
		return nil, err
	}

	return &domain.Invitation{
		Client:     client,
		Ceremonies: ceremonies,
		Photos:     withPhotoURLs(photos, s.store),
		Template:   template,
		Settings:   settings,
	}, nil
}

// SubmitRSVP records rsvp against the client resolved from slug and notifies
// the couple. Name and response are stored exactly as given.
func (s *invitationService) SubmitRSVP(ctx context.Context, slug string, rsvp *domain.RSVP) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(rsvp.Name) == "" {
		return domain.Validation("name is required")
	}
	if strings.TrimSpace(rsvp.Response) == "" {
		return domain.Validation("response is required")
	}

	client, err := clientBySlug(ctx, s.clientRepo, slug, msgClientNotFound)
	if err != nil {
		return err
	}
	rsvp.ClientID = client.ID
	if err := s.rsvpRepo.Create(ctx, rsvp); err != nil {
		return domain.Upstream("create rsvp", err)
	}

	s.notifyRSVP(ctx, client, rsvp)
	return nil
}

// notifyRSVP emails the couple about a new reply. Failures are only logged.
func (s *invitationService) notifyRSVP(ctx context.Context, client *domain.Client, rsvp *domain.RSVP) {
	if s.emailService == nil || client.ContactEmail == "" {
		return
	}
	data := &domain.RSVPReceivedEmailData{
		To:         client.ContactEmail,
		CoupleName: client.CoupleName,
		GuestName:  rsvp.Name,
		Response:   rsvp.Response,
		InviteSlug: client.Slug,
	}
	if rsvp.Email != nil {
		data.GuestEmail = *rsvp.Email
	}
	if rsvp.Message != nil {
		data.Message = *rsvp.Message
	}
	if err := s.emailService.SendRSVPReceived(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "rsvp notification failed", "client_id", client.ID, "rsvp_id", rsvp.ID, "err", err)
	}
}

func (s *invitationService) ListBlessings(ctx context.Context, slug string) ([]*domain.Blessing, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	client, err := clientBySlug(ctx, s.clientRepo, slug, msgClientNotFound)
	if err != nil {
		return nil, err
	}
	blessings, err := s.blessingRepo.ListByClientID(ctx, client.ID)
	if err != nil {
		return nil, domain.Upstream("list blessings", err)
	}
	if blessings == nil {
		blessings = []*domain.Blessing{}
	}
	return blessings, nil
}

func (s *invitationService) PostBlessing(ctx context.Context, slug string, b *domain.Blessing) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(b.Name) == "" {
		return domain.Validation("name is required")
	}
	if strings.TrimSpace(b.Message) == "" {
		return domain.Validation("message is required")
	}
	client, err := clientBySlug(ctx, s.clientRepo, slug, msgClientNotFound)
	if err != nil {
		return err
	}
	b.ClientID = client.ID
	if err := s.blessingRepo.Create(ctx, b); err != nil {
		return domain.Upstream("create blessing", err)
	}
	return nil
}
