package service

import (
	"context"
	"fmt"
	"image"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"variant-studio/catalog"
	"variant-studio/compositor"
	"variant-studio/imageio"
	"variant-studio/models"
	"variant-studio/utils"
)

// VariantService renders a product photo through the template catalog
// Implements VariantServiceInterface
type VariantService struct {
	compositor *compositor.Compositor
	workers    int
	timeout    time.Duration
	policy     models.FailurePolicy
}

// NewVariantService creates a new VariantService.
// workers bounds concurrent compositions, timeout bounds the whole batch.
func NewVariantService(c *compositor.Compositor, workers int, timeout time.Duration, policy models.FailurePolicy) *VariantService {
	if workers < 1 {
		workers = 1
	}
	return &VariantService{
		compositor: c,
		workers:    workers,
		timeout:    timeout,
		policy:     policy,
	}
}

// Ensure VariantService implements VariantServiceInterface
var _ VariantServiceInterface = (*VariantService)(nil)

// GenerateBatch renders templates 1..count for the image.
// The image is decoded once and shared read-only by every worker.
func (s *VariantService) GenerateBatch(ctx context.Context, imageBytes []byte, categoryID string, count int) (*models.Batch, error) {
	templates, err := catalog.Generate(count)
	if err != nil {
		return nil, err
	}

	img, format, err := imageio.Decode(imageBytes)
	if err != nil {
		return nil, err
	}
	log.Printf("📸 Source image decoded: format=%s, bounds=%v", format, img.Bounds())

	return s.RenderTemplates(ctx, img, templates, categoryID)
}

// RenderTemplates composes img with each template. Results keep the order of
// templates regardless of which worker finishes first.
func (s *VariantService) RenderTemplates(ctx context.Context, img image.Image, templates []models.Template, categoryID string) (*models.Batch, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	log.Printf("🎨 Generating %d variants (category=%s, workers=%d, policy=%s)", len(templates), categoryID, s.workers, s.policy)
	start := time.Now()

	variants := make([]*models.RenderedVariant, len(templates))
	failures := make([]*models.VariantFailure, len(templates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, tmpl := range templates {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			data, err := s.render(tmpl, img, categoryID)
			if err != nil {
				if s.policy == models.FailureSkip {
					log.Printf("⚠️  Skipping template %d: %v", tmpl.ID, err)
					failures[i] = &models.VariantFailure{TemplateID: tmpl.ID, Error: err.Error()}
					return nil
				}
				log.Printf("❌ Template %d failed, aborting batch: %v", tmpl.ID, err)
				return fmt.Errorf("template %d: %w", tmpl.ID, err)
			}

			variants[i] = &models.RenderedVariant{
				TemplateID: tmpl.ID,
				Name:       utils.VariantFileName(tmpl.ID),
				PNG:        data,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to generate variants: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to generate variants within %s: %w", s.timeout, err)
	}

	batch := &models.Batch{
		CategoryID: categoryID,
		Variants:   make([]models.RenderedVariant, 0, len(templates)),
	}
	for i := range templates {
		switch {
		case variants[i] != nil:
			batch.Variants = append(batch.Variants, *variants[i])
		case failures[i] != nil:
			batch.Failures = append(batch.Failures, *failures[i])
		}
	}

	log.Printf("✓ Generated %d variants (%d failed) in %s", len(batch.Variants), len(batch.Failures), time.Since(start).Round(time.Millisecond))
	return batch, nil
}

func (s *VariantService) render(tmpl models.Template, img image.Image, categoryID string) ([]byte, error) {
	canvas, err := s.compositor.Compose(tmpl, img, categoryID)
	if err != nil {
		return nil, err
	}
	data, err := imageio.EncodePNG(canvas)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrComposition, err)
	}
	return data, nil
}
