package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"weddinginvite/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const (
	testClientID   = "7b0c2b1e-5f64-4f57-9a55-0c7a3c4a8d21"
	testCeremonyID = "0d5f4c9e-3a1b-4d2e-8f70-6b9a1c2d3e4f"
	testPhotoID    = "5a6b7c8d-9e0f-4a1b-8c2d-3e4f5a6b7c8d"
)

// envelope mirrors helpers.APIResponse with raw data for per-test decoding.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env
}

// serve routes req through a mux with pattern so that path values are set.
func serve(pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

type fakeInvitationService struct {
	invitation *domain.Invitation
	err        error
	client     *domain.Client
	blessings  []*domain.Blessing
	lastSlug   string
	lastRSVP   *domain.RSVP
}

func (f *fakeInvitationService) GetInvitation(_ context.Context, slug string) (*domain.Invitation, error) {
	f.lastSlug = slug
	if f.err != nil {
		return nil, f.err
	}
	return f.invitation, nil
}

func (f *fakeInvitationService) SubmitRSVP(_ context.Context, slug string, rsvp *domain.RSVP) error {
	f.lastSlug = slug
	if f.err != nil {
		return f.err
	}
	rsvp.ID = "rsvp-1"
	rsvp.ClientID = f.client.ID
	rsvp.CreatedAt = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	f.lastRSVP = rsvp
	return nil
}

func (f *fakeInvitationService) ListBlessings(_ context.Context, slug string) ([]*domain.Blessing, error) {
	f.lastSlug = slug
	if f.err != nil {
		return nil, f.err
	}
	return f.blessings, nil
}

func (f *fakeInvitationService) PostBlessing(_ context.Context, slug string, b *domain.Blessing) error {
	f.lastSlug = slug
	if f.err != nil {
		return f.err
	}
	b.ID = "blessing-1"
	b.ClientID = f.client.ID
	return nil
}

type fakeClientService struct {
	clients    []*domain.Client
	total      int
	err        error
	lastParams domain.PaginationParams
	lastCreate *domain.Client
	lastID     string
	lastUpdate domain.ClientUpdate
}

func (f *fakeClientService) List(_ context.Context, p domain.PaginationParams) ([]*domain.Client, int, error) {
	f.lastParams = p
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.clients, f.total, nil
}

func (f *fakeClientService) Get(_ context.Context, id string) (*domain.Client, error) {
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Client{ID: id, Slug: "alice-bob"}, nil
}

func (f *fakeClientService) Create(_ context.Context, c *domain.Client) error {
	f.lastCreate = c
	if f.err != nil {
		return f.err
	}
	c.ID = testClientID
	if c.Slug == "" {
		c.Slug = "alice-bob"
	}
	return nil
}

func (f *fakeClientService) Update(_ context.Context, id string, u domain.ClientUpdate) (*domain.Client, error) {
	f.lastID, f.lastUpdate = id, u
	if f.err != nil {
		return nil, f.err
	}
	c := &domain.Client{ID: id, Slug: "alice-bob"}
	if u.TemplateID != nil {
		c.TemplateID = *u.TemplateID
	}
	return c, nil
}

type fakeCeremonyService struct {
	err        error
	lastAdd    *domain.Ceremony
	lastUpdate domain.CeremonyUpdate
	lastIDs    [2]string
}

func (f *fakeCeremonyService) Add(_ context.Context, c *domain.Ceremony) error {
	f.lastAdd = c
	if f.err != nil {
		return f.err
	}
	c.ID = testCeremonyID
	return nil
}

func (f *fakeCeremonyService) List(_ context.Context, clientID string) ([]*domain.Ceremony, error) {
	f.lastIDs[0] = clientID
	if f.err != nil {
		return nil, f.err
	}
	return []*domain.Ceremony{}, nil
}

func (f *fakeCeremonyService) Update(_ context.Context, clientID, id string, u domain.CeremonyUpdate) (*domain.Ceremony, error) {
	f.lastIDs = [2]string{clientID, id}
	f.lastUpdate = u
	if f.err != nil {
		return nil, f.err
	}
	c := &domain.Ceremony{ID: id, ClientID: clientID}
	if u.Venue != nil {
		c.Venue = *u.Venue
	}
	return c, nil
}

func (f *fakeCeremonyService) Delete(_ context.Context, clientID, id string) error {
	f.lastIDs = [2]string{clientID, id}
	return f.err
}

type fakePhotoService struct {
	err        error
	lastUpload domain.PhotoUpload
	lastIDs    [2]string
	calls      int
}

func (f *fakePhotoService) Upload(_ context.Context, clientID string, u domain.PhotoUpload) (*domain.Photo, error) {
	f.calls++
	f.lastIDs[0] = clientID
	f.lastUpload = u
	if f.err != nil {
		return nil, f.err
	}
	path := "alice-bob/" + u.Filename
	return &domain.Photo{ID: testPhotoID, ClientID: clientID, StoragePath: path, Filename: u.Filename, URL: "https://cdn.test/" + path}, nil
}

func (f *fakePhotoService) List(_ context.Context, clientID string) ([]*domain.Photo, error) {
	f.lastIDs[0] = clientID
	if f.err != nil {
		return nil, f.err
	}
	return []*domain.Photo{{ID: testPhotoID, StoragePath: "alice-bob/a.jpg", URL: "https://cdn.test/alice-bob/a.jpg"}}, nil
}

func (f *fakePhotoService) Delete(_ context.Context, clientID, id string) error {
	f.lastIDs = [2]string{clientID, id}
	return f.err
}

type fakeGuestbookService struct {
	rsvps      []*domain.RSVP
	templates  []*domain.Template
	err        error
	lastParams domain.PaginationParams
}

func (f *fakeGuestbookService) ListRSVPs(_ context.Context, _ string, p domain.PaginationParams) ([]*domain.RSVP, int, error) {
	f.lastParams = p
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.rsvps, len(f.rsvps), nil
}

func (f *fakeGuestbookService) ListTemplates(_ context.Context) ([]*domain.Template, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.templates, nil
}

type fakeSettingsService struct {
	settings   *domain.Settings
	err        error
	lastUpdate *domain.Settings
}

func (f *fakeSettingsService) Get(_ context.Context) (*domain.Settings, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.settings == nil {
		return domain.DefaultSettings(), nil
	}
	return f.settings, nil
}

func (f *fakeSettingsService) Update(_ context.Context, s *domain.Settings) (*domain.Settings, error) {
	f.lastUpdate = s
	if f.err != nil {
		return nil, f.err
	}
	f.settings = s
	return s, nil
}
