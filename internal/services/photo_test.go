package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddinginvite/internal/domain"
)

type photoFixture struct {
	clients *fakeClientRepo
	photos  *fakePhotoRepo
	store   *fakeObjectStore
	client  *domain.Client
}

func newPhotoFixture() *photoFixture {
	f := &photoFixture{
		clients: newFakeClientRepo(),
		photos:  &fakePhotoRepo{},
		store:   newFakeObjectStore(),
	}
	f.client = f.clients.add(&domain.Client{CoupleName: "Alice & Bob", Slug: "alice-bob"})
	return f
}

func (f *photoFixture) service(images domain.ImageInspector) domain.PhotoService {
	return NewPhotoService(f.clients, f.photos, f.store, images, time.Second)
}

func TestPhotoService_Upload(t *testing.T) {
	f := newPhotoFixture()
	data := pngBytes(t, 8, 6)

	photo, err := f.service(fakeInspector{width: 8, height: 6}).Upload(context.Background(), f.client.ID, domain.PhotoUpload{
		Filename:    "first-dance.png",
		ContentType: "image/png",
		Data:        data,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice-bob/first-dance.png", photo.StoragePath)
	assert.Equal(t, "first-dance.png", photo.Filename)
	assert.Equal(t, f.client.ID, photo.ClientID)
	require.NotNil(t, photo.Width)
	require.NotNil(t, photo.Height)
	assert.Equal(t, 8, *photo.Width)
	assert.Equal(t, 6, *photo.Height)
	assert.Equal(t, testPublicPrefix+"/alice-bob/first-dance.png", photo.URL)
	assert.Equal(t, data, f.store.objects["alice-bob/first-dance.png"])
	assert.Equal(t, "image/png", f.store.contentType["alice-bob/first-dance.png"])
	assert.Len(t, f.photos.items, 1)
}

func TestPhotoService_UploadSniffsMissingContentType(t *testing.T) {
	f := newPhotoFixture()

	_, err := f.service(fakeInspector{width: 1, height: 1}).Upload(context.Background(), f.client.ID, domain.PhotoUpload{
		Filename:    `C:\Users\me\..\pic.png`,
		ContentType: "application/octet-stream",
		Data:        pngBytes(t, 1, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, "image/png", f.store.contentType["alice-bob/pic.png"])
}

func TestPhotoService_UploadUnknownDimensions(t *testing.T) {
	f := newPhotoFixture()

	photo, err := f.service(fakeInspector{err: errors.New("unsupported")}).Upload(context.Background(), f.client.ID, domain.PhotoUpload{
		Filename: "a.png",
		Data:     pngBytes(t, 2, 2),
	})
	require.NoError(t, err)
	assert.Nil(t, photo.Width)
	assert.Nil(t, photo.Height)
}

func TestPhotoService_UploadErrors(t *testing.T) {
	tests := []struct {
		name     string
		clientID string
		upload   func(t *testing.T) domain.PhotoUpload
		setup    func(f *photoFixture)
		wantErr  error
		wantMsg  string
	}{
		{
			name:    "not an image",
			upload:  func(t *testing.T) domain.PhotoUpload { return domain.PhotoUpload{Filename: "a.txt", ContentType: "image/png", Data: []byte("hello")} },
			wantErr: domain.ErrValidation,
		},
		{
			name:    "empty file",
			upload:  func(t *testing.T) domain.PhotoUpload { return domain.PhotoUpload{Filename: "a.png"} },
			wantErr: domain.ErrValidation,
		},
		{
			name:    "no filename",
			upload:  func(t *testing.T) domain.PhotoUpload { return domain.PhotoUpload{Filename: "..", Data: pngBytes(t, 1, 1)} },
			wantErr: domain.ErrValidation,
		},
		{
			name:     "unknown client",
			clientID: "missing",
			upload:   func(t *testing.T) domain.PhotoUpload { return domain.PhotoUpload{Filename: "a.png", Data: pngBytes(t, 1, 1)} },
			wantErr:  domain.ErrNotFound,
			wantMsg:  "Client not found",
		},
		{
			name:    "storage failure",
			upload:  func(t *testing.T) domain.PhotoUpload { return domain.PhotoUpload{Filename: "a.png", Data: pngBytes(t, 1, 1)} },
			setup:   func(f *photoFixture) { f.store.putErr = errors.New("bucket not found") },
			wantErr: domain.ErrUpstream,
		},
		{
			name:    "metadata failure",
			upload:  func(t *testing.T) domain.PhotoUpload { return domain.PhotoUpload{Filename: "a.png", Data: pngBytes(t, 1, 1)} },
			setup:   func(f *photoFixture) { f.photos.createErr = errors.New("insert failed") },
			wantErr: domain.ErrUpstream,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPhotoFixture()
			if tt.setup != nil {
				tt.setup(f)
			}
			clientID := f.client.ID
			if tt.clientID != "" {
				clientID = tt.clientID
			}

			_, err := f.service(fakeInspector{}).Upload(context.Background(), clientID, tt.upload(t))
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, domain.MessageOf(err))
			}
		})
	}
}

func TestPhotoService_ListAndDelete(t *testing.T) {
	f := newPhotoFixture()
	svc := f.service(fakeInspector{})
	ctx := context.Background()

	photos, err := svc.List(ctx, f.client.ID)
	require.NoError(t, err)
	assert.NotNil(t, photos)
	assert.Empty(t, photos)

	p, err := svc.Upload(ctx, f.client.ID, domain.PhotoUpload{Filename: "a.png", Data: pngBytes(t, 1, 1)})
	require.NoError(t, err)

	photos, err = svc.List(ctx, f.client.ID)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, testPublicPrefix+"/"+photos[0].StoragePath, photos[0].URL)

	f.store.deleteErr = errors.New("denied")
	require.ErrorIs(t, svc.Delete(ctx, f.client.ID, p.ID), domain.ErrUpstream)
	f.store.deleteErr = nil

	require.NoError(t, svc.Delete(ctx, f.client.ID, p.ID))
	assert.Empty(t, f.store.objects)
	assert.Empty(t, f.photos.items)

	err = svc.Delete(ctx, f.client.ID, p.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Photo not found", domain.MessageOf(err))
}
