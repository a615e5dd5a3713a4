package domain

import (
	"context"
	"io"
	"time"
)

// Photo is the metadata of an uploaded image. URL is derived from
// StoragePath when the photo is read and is never persisted.
// swagger:model Photo
type Photo struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	StoragePath string    `json:"storage_path"`
	Filename    string    `json:"filename"`
	Width       *int      `json:"width"`
	Height      *int      `json:"height"`
	CreatedAt   time.Time `json:"created_at"`
	URL         string    `json:"url,omitempty"`
}

// PhotoUpload is an uploaded file as received from the admin.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PhotoRepository defines storage operations for photo metadata.
type PhotoRepository interface {
	Create(ctx context.Context, p *Photo) error
	ListByClientID(ctx context.Context, clientID string) ([]*Photo, error)
	GetByID(ctx context.Context, clientID, id string) (*Photo, error)
	Delete(ctx context.Context, clientID, id string) error
}

// ObjectStore stores binary objects in a bucket keyed by path.
type ObjectStore interface {
	Put(ctx context.Context, path string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, path string) error
	// PublicURL returns the public URL of the object at path. It performs no I/O.
	PublicURL(path string) string
}

// ImageInspector reports the pixel dimensions of an encoded image.
type ImageInspector interface {
	Dimensions(data []byte) (width, height int, err error)
}

// PhotoService defines admin operations on a client's photos.
type PhotoService interface {
	Upload(ctx context.Context, clientID string, upload PhotoUpload) (*Photo, error)
	List(ctx context.Context, clientID string) ([]*Photo, error)
	Delete(ctx context.Context, clientID, id string) error
}
