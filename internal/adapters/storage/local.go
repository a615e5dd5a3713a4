package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"weddinginvite/internal/domain"
)

// LocalStore keeps objects on disk under <dir>/<bucket>. Its public URLs use
// the same layout as Supabase so that Handler can serve them in development.
type LocalStore struct {
	root      string
	bucket    string
	urlPrefix string
}

// NewLocalStore creates the bucket directory if needed.
func NewLocalStore(dir, bucket, publicBaseURL string) (*LocalStore, error) {
	if dir == "" {
		dir = "./uploads"
	}
	root := filepath.Join(dir, bucket)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &LocalStore{root: root, bucket: bucket, urlPrefix: PublicURLPrefix(publicBaseURL, bucket)}, nil
}

var _ domain.ObjectStore = (*LocalStore)(nil)

func (s *LocalStore) resolve(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if clean == "." || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid object path %q", path)
	}
	return filepath.Join(s.root, clean), nil
}

// createFile is a seam for testing write and close failures.
var createFile = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// Put writes body to path. A failed write or close removes the partial file.
func (s *LocalStore) Put(_ context.Context, path string, body io.Reader, _ int64, _ string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	f, err := createFile(full)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(full)
		return fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(full)
		return fmt.Errorf("close file: %w", err)
	}
	return nil
}

func (s *LocalStore) Delete(_ context.Context, path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

func (s *LocalStore) PublicURL(path string) string {
	return publicURL(s.urlPrefix, path)
}

// Handler serves "/<bucket>/<path>" requests from the bucket directory.
func (s *LocalStore) Handler() http.Handler {
	return http.StripPrefix("/"+s.bucket+"/", http.FileServer(http.Dir(s.root)))
}
