package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RSVPReceivedEmailData holds data for the email sent to a couple when a guest replies.
type RSVPReceivedEmailData struct {
	To         string
	CoupleName string
	GuestName  string
	GuestEmail string
	Response   string
	Message    string
	InviteSlug string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRSVPReceived(ctx context.Context, data *RSVPReceivedEmailData) error
}
