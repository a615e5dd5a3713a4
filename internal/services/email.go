package services

import (
	"context"
	"fmt"
	"log/slog"

	"weddinginvite/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendRSVPReceived tells the couple that a guest replied, using the "rsvp_received" template.
func (s *emailService) SendRSVPReceived(ctx context.Context, data *domain.RSVPReceivedEmailData) error {
	if data == nil {
		return fmt.Errorf("rsvp received email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("rsvp_received", data)
	if err != nil {
		return fmt.Errorf("render rsvp_received template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.To, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send rsvp received email: %w", err)
	}
	s.logger.InfoContext(ctx, "rsvp notification sent", "to", data.To, "slug", data.InviteSlug)
	return nil
}
