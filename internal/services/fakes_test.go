package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"weddinginvite/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeClientRepo is an in-memory ClientRepository for tests.
type fakeClientRepo struct {
	byID       map[string]*domain.Client
	nextID     int
	createErrs []error // returned by successive Create calls before succeeding
	getErr     error
	existsErr  error
	listErr    error
	updateErr  error
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{byID: make(map[string]*domain.Client), nextID: 1}
}

func (f *fakeClientRepo) add(c *domain.Client) *domain.Client {
	if c.ID == "" {
		c.ID = fmt.Sprintf("client-%d", f.nextID)
		f.nextID++
	}
	f.byID[c.ID] = c
	return c
}

func (f *fakeClientRepo) Create(_ context.Context, c *domain.Client) error {
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		return err
	}
	for _, existing := range f.byID {
		if existing.Slug == c.Slug {
			return domain.ErrSlugTaken
		}
	}
	f.add(c)
	return nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id string) (*domain.Client, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeClientRepo) GetBySlug(_ context.Context, slug string) (*domain.Client, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, c := range f.byID {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeClientRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, c := range f.byID {
		if c.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeClientRepo) List(_ context.Context, _ domain.PaginationParams) ([]*domain.Client, int, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	var out []*domain.Client
	for _, c := range f.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, len(out), nil
}

func (f *fakeClientRepo) Update(_ context.Context, id string, u domain.ClientUpdate) (*domain.Client, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	c, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if u.CoupleName != nil {
		c.CoupleName = *u.CoupleName
	}
	if u.ContactEmail != nil {
		c.ContactEmail = *u.ContactEmail
	}
	if u.TemplateID != nil {
		c.TemplateID = *u.TemplateID
	}
	return c, nil
}

// fakeCeremonyRepo is an in-memory CeremonyRepository for tests.
type fakeCeremonyRepo struct {
	items     []*domain.Ceremony
	nextID    int
	createErr error
	listErr   error
}

func (f *fakeCeremonyRepo) Create(_ context.Context, c *domain.Ceremony) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	c.ID = fmt.Sprintf("ceremony-%d", f.nextID)
	f.items = append(f.items, c)
	return nil
}

func (f *fakeCeremonyRepo) ListByClientID(_ context.Context, clientID string) ([]*domain.Ceremony, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Ceremony
	for _, c := range f.items {
		if c.ClientID == clientID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCeremonyRepo) Update(_ context.Context, clientID, id string, u domain.CeremonyUpdate) (*domain.Ceremony, error) {
	for _, c := range f.items {
		if c.ID == id && c.ClientID == clientID {
			if u.Title != nil {
				c.Title = *u.Title
			}
			if u.Venue != nil {
				c.Venue = *u.Venue
			}
			if u.DateTime != nil {
				c.DateTime = *u.DateTime
			}
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCeremonyRepo) Delete(_ context.Context, clientID, id string) error {
	for i, c := range f.items {
		if c.ID == id && c.ClientID == clientID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakePhotoRepo is an in-memory PhotoRepository for tests.
type fakePhotoRepo struct {
	items     []*domain.Photo
	nextID    int
	createErr error
	listErr   error
}

func (f *fakePhotoRepo) Create(_ context.Context, p *domain.Photo) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	p.ID = fmt.Sprintf("photo-%d", f.nextID)
	f.items = append(f.items, p)
	return nil
}

func (f *fakePhotoRepo) ListByClientID(_ context.Context, clientID string) ([]*domain.Photo, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Photo
	for _, p := range f.items {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePhotoRepo) GetByID(_ context.Context, clientID, id string) (*domain.Photo, error) {
	for _, p := range f.items {
		if p.ID == id && p.ClientID == clientID {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakePhotoRepo) Delete(_ context.Context, clientID, id string) error {
	for i, p := range f.items {
		if p.ID == id && p.ClientID == clientID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeTemplateRepo is an in-memory TemplateRepository for tests.
type fakeTemplateRepo struct {
	byID    map[string]*domain.Template
	getErr  error
	listErr error
}

func (f *fakeTemplateRepo) GetByID(_ context.Context, id string) (*domain.Template, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if t, ok := f.byID[id]; ok {
		return t, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTemplateRepo) List(_ context.Context) ([]*domain.Template, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Template
	for _, t := range f.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// fakeRSVPRepo is an in-memory RSVPRepository for tests.
type fakeRSVPRepo struct {
	items     []*domain.RSVP
	createErr error
}

func (f *fakeRSVPRepo) Create(_ context.Context, r *domain.RSVP) error {
	if f.createErr != nil {
		return f.createErr
	}
	r.ID = fmt.Sprintf("rsvp-%d", len(f.items)+1)
	r.CreatedAt = time.Now().UTC()
	f.items = append(f.items, r)
	return nil
}

func (f *fakeRSVPRepo) ListByClientID(_ context.Context, clientID string, _ domain.PaginationParams) ([]*domain.RSVP, int, error) {
	var out []*domain.RSVP
	for i := len(f.items) - 1; i >= 0; i-- {
		if f.items[i].ClientID == clientID {
			out = append(out, f.items[i])
		}
	}
	return out, len(out), nil
}

// fakeBlessingRepo is an in-memory BlessingRepository for tests.
type fakeBlessingRepo struct {
	items   []*domain.Blessing
	listErr error
}

func (f *fakeBlessingRepo) Create(_ context.Context, b *domain.Blessing) error {
	b.ID = fmt.Sprintf("blessing-%d", len(f.items)+1)
	b.CreatedAt = time.Now().UTC()
	f.items = append(f.items, b)
	return nil
}

func (f *fakeBlessingRepo) ListByClientID(_ context.Context, clientID string) ([]*domain.Blessing, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.Blessing
	for i := len(f.items) - 1; i >= 0; i-- {
		if f.items[i].ClientID == clientID {
			out = append(out, f.items[i])
		}
	}
	return out, nil
}

const testPublicPrefix = "https://proj.supabase.co/storage/v1/object/public/client-photos"

// fakeObjectStore keeps objects in memory.
type fakeObjectStore struct {
	objects     map[string][]byte
	contentType map[string]string
	putErr      error
	deleteErr   error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string][]byte), contentType: make(map[string]string)}
}

func (f *fakeObjectStore) Put(_ context.Context, path string, body io.Reader, _ int64, contentType string) error {
	if f.putErr != nil {
		return f.putErr
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.objects[path] = b
	f.contentType[path] = contentType
	return nil
}

func (f *fakeObjectStore) Delete(_ context.Context, path string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, path)
	return nil
}

func (f *fakeObjectStore) PublicURL(path string) string {
	return testPublicPrefix + "/" + path
}

type fakeInspector struct {
	width, height int
	err           error
}

func (f fakeInspector) Dimensions([]byte) (int, int, error) {
	return f.width, f.height, f.err
}

// recordingEmailService records RSVP notifications.
type recordingEmailService struct {
	sent []*domain.RSVPReceivedEmailData
	err  error
}

func (r *recordingEmailService) SendRSVPReceived(_ context.Context, data *domain.RSVPReceivedEmailData) error {
	r.sent = append(r.sent, data)
	return r.err
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func strPtr(s string) *string { return &s }

// fakeSettingsRepo holds at most one settings row.
type fakeSettingsRepo struct {
	saved     *domain.Settings
	getErr    error
	upsertErr error
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.Settings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.saved == nil {
		return nil, domain.ErrNotFound
	}
	cp := *f.saved
	return &cp, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, s *domain.Settings) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	s.UpdatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cp := *s
	f.saved = &cp
	return nil
}
