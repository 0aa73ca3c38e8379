// Package imageio decodes uploaded product photos and encodes rendered variants.
package imageio

import (
	"bytes"
	"fmt"
	"image"

	// Registered decoders for uploads beyond what imaging registers itself.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"

	"variant-studio/models"
)

// MaxPixels caps width*height of a decodable upload (40 MP).
const MaxPixels = 40_000_000

// Decode turns raw upload bytes into an image.
// Any failure is reported as models.ErrInvalidImageInput.
// Headers are checked against MaxPixels before any pixel data is allocated.
func Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: empty input", models.ErrInvalidImageInput)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to read image header: %v", models.ErrInvalidImageInput, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, "", fmt.Errorf("%w: image has no pixels", models.ErrInvalidImageInput)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, "", fmt.Errorf("%w: %dx%d exceeds %d pixels", models.ErrInvalidImageInput, cfg.Width, cfg.Height, MaxPixels)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to decode image: %v", models.ErrInvalidImageInput, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, "", fmt.Errorf("%w: image has no pixels", models.ErrInvalidImageInput)
	}
	return img, format, nil
}

// EncodePNG encodes img losslessly, keeping the alpha channel.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
