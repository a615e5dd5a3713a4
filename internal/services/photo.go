package services

import (
	"bytes"
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"weddinginvite/internal/domain"
)

const msgPhotoNotFound = "Photo not found"

type photoService struct {
	clientRepo     domain.ClientRepository
	photoRepo      domain.PhotoRepository
	store          domain.ObjectStore
	images         domain.ImageInspector
	contextTimeout time.Duration
}

func NewPhotoService(
	clientRepo domain.ClientRepository,
	photoRepo domain.PhotoRepository,
	store domain.ObjectStore,
	images domain.ImageInspector,
	timeout time.Duration,
) domain.PhotoService {
	return &photoService{
		clientRepo:     clientRepo,
		photoRepo:      photoRepo,
		store:          store,
		images:         images,
		contextTimeout: timeout,
	}
}

// photoFilename reduces an uploaded file name to its last path element.
func photoFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, `\`, "/"))
	switch base {
	case ".", "/", "..":
		return ""
	}
	return strings.TrimSpace(base)
}

// photoContentType returns the declared type when it names an image and the
// sniffed type otherwise. ok is false when the data is not an image.
func photoContentType(declared string, data []byte) (contentType string, ok bool) {
	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return "", false
	}
	if strings.HasPrefix(declared, "image/") {
		return declared, true
	}
	return detected.String(), true
}

// Upload stores the file at <slug>/<filename> in the object store and records
// its metadata. Width and height stay nil when the image header cannot be read.
func (s *photoService) Upload(ctx context.Context, clientID string, upload domain.PhotoUpload) (*domain.Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	filename := photoFilename(upload.Filename)
	if filename == "" {
		return nil, domain.Validation("file must have a name")
	}
	if len(upload.Data) == 0 {
		return nil, domain.Validation("file is empty")
	}
	contentType, ok := photoContentType(upload.ContentType, upload.Data)
	if !ok {
		return nil, domain.Validation("file must be an image")
	}

	client, err := clientByID(ctx, s.clientRepo, clientID)
	if err != nil {
		return nil, err
	}

	storagePath := client.Slug + "/" + filename
	if err := s.store.Put(ctx, storagePath, bytes.NewReader(upload.Data), int64(len(upload.Data)), contentType); err != nil {
		return nil, domain.Upstream("upload photo", err)
	}

	photo := &domain.Photo{
		ClientID:    client.ID,
		StoragePath: storagePath,
		Filename:    filename,
		CreatedAt:   time.Now().UTC(),
	}
	if w, h, err := s.images.Dimensions(upload.Data); err == nil {
		photo.Width, photo.Height = &w, &h
	}
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		return nil, domain.Upstream("create photo", err)
	}
	photo.URL = s.store.PublicURL(photo.StoragePath)
	return photo, nil
}

func (s *photoService) List(ctx context.Context, clientID string) ([]*domain.Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := clientByID(ctx, s.clientRepo, clientID); err != nil {
		return nil, err
	}
	photos, err := s.photoRepo.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, domain.Upstream("list photos", err)
	}
	return withPhotoURLs(photos, s.store), nil
}

// Delete removes the stored object, then the metadata row.
func (s *photoService) Delete(ctx context.Context, clientID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	photo, err := s.photoRepo.GetByID(ctx, clientID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound(msgPhotoNotFound)
		}
		return domain.Upstream("get photo", err)
	}
	if err := s.store.Delete(ctx, photo.StoragePath); err != nil {
		return domain.Upstream("delete photo object", err)
	}
	if err := s.photoRepo.Delete(ctx, clientID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound(msgPhotoNotFound)
		}
		return domain.Upstream("delete photo", err)
	}
	return nil
}

// withPhotoURLs sets the public URL of every photo. A nil slice becomes empty.
func withPhotoURLs(photos []*domain.Photo, store domain.ObjectStore) []*domain.Photo {
	if photos == nil {
		return []*domain.Photo{}
	}
	for _, p := range photos {
		p.URL = store.PublicURL(p.StoragePath)
	}
	return photos
}
