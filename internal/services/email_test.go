package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddinginvite/internal/domain"
)

type stubRenderer struct {
	name string
	err  error
}

func (r *stubRenderer) Render(name string, _ any) (string, string, string, error) {
	r.name = name
	if r.err != nil {
		return "", "", "", r.err
	}
	return "subject", "<p>html</p>", "text", nil
}

type stubMailer struct {
	to, subject string
	err         error
}

func (m *stubMailer) Send(_ context.Context, to, subject, _, _ string) error {
	m.to, m.subject = to, subject
	return m.err
}

func TestEmailService_SendRSVPReceived(t *testing.T) {
	renderer := &stubRenderer{}
	mailer := &stubMailer{}
	svc := NewEmailService(mailer, renderer, discardLogger())

	err := svc.SendRSVPReceived(context.Background(), &domain.RSVPReceivedEmailData{To: "alice@example.com", GuestName: "John"})
	require.NoError(t, err)
	assert.Equal(t, "rsvp_received", renderer.name)
	assert.Equal(t, "alice@example.com", mailer.to)
	assert.Equal(t, "subject", mailer.subject)
}

func TestEmailService_SendRSVPReceivedErrors(t *testing.T) {
	svc := NewEmailService(&stubMailer{}, &stubRenderer{}, discardLogger())
	require.Error(t, svc.SendRSVPReceived(context.Background(), nil))

	svc = NewEmailService(&stubMailer{}, &stubRenderer{err: errors.New("bad template")}, discardLogger())
	require.Error(t, svc.SendRSVPReceived(context.Background(), &domain.RSVPReceivedEmailData{To: "a@example.com"}))

	svc = NewEmailService(&stubMailer{err: errors.New("ses down")}, &stubRenderer{}, discardLogger())
	err := svc.SendRSVPReceived(context.Background(), &domain.RSVPReceivedEmailData{To: "a@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ses down")
}
