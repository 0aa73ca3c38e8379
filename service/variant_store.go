package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"variant-studio/imageio"
	"variant-studio/models"
	"variant-studio/utils"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// Preview sizes accepted by VariantStore.Preview
const (
	SizeThumb  = "thumb"
	SizeMedium = "medium"
)

// VariantStore keeps generated variants on disk as root/<session>/variant_<id>.png,
// with JPEG previews cached next to them.
type VariantStore struct {
	root string
}

// NewVariantStore creates the store, making sure root exists
func NewVariantStore(root string) (*VariantStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &VariantStore{root: root}, nil
}

// NewSession returns a fresh session id
func (s *VariantStore) NewSession() string {
	return uuid.NewString()
}

// VariantURL is the public path a stored variant is served from
func VariantURL(session, name string) string {
	return fmt.Sprintf("/api/image/%s/%s", session, name)
}

// Save writes a rendered variant into the session and returns its URL
func (s *VariantStore) Save(session string, v models.RenderedVariant) (string, error) {
	path, err := s.path(session, v.Name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(path, v.PNG, 0644); err != nil {
		return "", fmt.Errorf("failed to write variant: %w", err)
	}
	return VariantURL(session, v.Name), nil
}

// SaveBatch stores every variant of a batch and returns their URLs in order
func (s *VariantStore) SaveBatch(session string, batch *models.Batch) ([]string, error) {
	urls := make([]string, 0, len(batch.Variants))
	for _, v := range batch.Variants {
		url, err := s.Save(session, v)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	log.Printf("💾 Stored %d variants in session %s", len(urls), session)
	return urls, nil
}

// Read returns a stored variant's PNG bytes
func (s *VariantStore) Read(session, name string) ([]byte, error) {
	path, err := s.path(session, name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s/%s", models.ErrNotFound, session, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read variant: %w", err)
	}
	return data, nil
}

// Preview returns a JPEG preview of a stored variant, building and caching it on first use
func (s *VariantStore) Preview(session, name, size string) ([]byte, error) {
	path, err := s.path(session, name)
	if err != nil {
		return nil, err
	}
	cachePath := strings.TrimSuffix(path, filepath.Ext(path)) + "_" + size + ".jpg"

	if data, err := os.ReadFile(cachePath); err == nil {
		return data, nil
	}

	original, err := s.Read(session, name)
	if err != nil {
		return nil, err
	}
	data, err := OptimizeImage(original, size)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(cachePath, data, 0644); err != nil {
		// serving still works without the cache
		log.Printf("⚠️  Failed to cache preview %s: %v", cachePath, err)
	} else {
		log.Printf("✓ Preview cached: %s", cachePath)
	}
	return data, nil
}

// path validates the session and file name before joining them onto root
func (s *VariantStore) path(session, name string) (string, error) {
	if _, err := uuid.Parse(session); err != nil {
		return "", fmt.Errorf("%w: session %q", models.ErrNotFound, session)
	}
	if _, err := utils.ParseVariantFileName(name); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrNotFound, err)
	}
	return filepath.Join(s.root, session, name), nil
}

// OptimizeImage converts an image to a JPEG no larger than the size's max dimension.
// size: "thumb" or "medium"; anything else falls back to medium
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, _, err := imageio.Decode(imageData)
	if err != nil {
		return nil, err
	}

	var maxDim, quality int
	switch size {
	case SizeThumb:
		maxDim, quality = maxSizeThumb, qualityThumb
	case SizeMedium:
		maxDim, quality = maxSizeMedium, qualityMedium
	default:
		maxDim, quality = maxSizeMedium, qualityMedium
		log.Printf("⚠️  Unknown size '%s', defaulting to medium", size)
	}

	var resized image.Image = img
	if b := img.Bounds(); b.Dx() > maxDim || b.Dy() > maxDim {
		// Fit keeps the aspect ratio
		resized = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	// JPEG has no alpha, flatten onto white first
	flat := imaging.New(resized.Bounds().Dx(), resized.Bounds().Dy(), color.White)
	flat = imaging.Overlay(flat, resized, image.Point{}, 1.0)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}
