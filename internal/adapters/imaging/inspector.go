// Package imaging reads image headers to report pixel dimensions.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"weddinginvite/internal/domain"
)

type inspector struct{}

// NewInspector returns an ImageInspector that decodes only the image header.
// Supported formats are JPEG, PNG, GIF, WebP, BMP and TIFF.
func NewInspector() domain.ImageInspector {
	return inspector{}
}

func (inspector) Dimensions(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decode image config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
