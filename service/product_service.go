package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"variant-studio/models"
	"variant-studio/phash"
	"variant-studio/repository"
	"variant-studio/shipping"
)

// ProductService ties uploads to stored products through the image's perceptual hash
// Implements ProductServiceInterface
type ProductService struct {
	repo         repository.ProductRepositoryInterface
	variants     VariantServiceInterface
	store        *VariantStore
	categories   *shipping.CategoryTable
	variantCount int
}

// NewProductService creates a new ProductService
func NewProductService(
	repo repository.ProductRepositoryInterface,
	variants VariantServiceInterface,
	store *VariantStore,
	categories *shipping.CategoryTable,
	variantCount int,
) *ProductService {
	return &ProductService{
		repo:         repo,
		variants:     variants,
		store:        store,
		categories:   categories,
		variantCount: variantCount,
	}
}

// Ensure ProductService implements ProductServiceInterface
var _ ProductServiceInterface = (*ProductService)(nil)

// Upload hashes the image, renders and stores its variants, and records the
// product with the category's worst-case (NATIONAL) shipping estimate.
// Re-uploading a known image overwrites its record.
func (s *ProductService) Upload(ctx context.Context, imageBytes []byte, categoryID string) (*models.UploadResult, error) {
	hash, err := phash.Hash(imageBytes)
	if err != nil {
		return nil, err
	}
	log.Printf("🔍 Upload hash: %s (category=%s)", hash, categoryID)

	existing, err := s.repo.FindByHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Printf("🔍 Hash %s already known (charge=%d), regenerating", hash, existing.ShippingCharge)
	}

	batch, err := s.variants.GenerateBatch(ctx, imageBytes, categoryID, s.variantCount)
	if err != nil {
		return nil, err
	}

	session := s.store.NewSession()
	urls, err := s.store.SaveBatch(session, batch)
	if err != nil {
		return nil, err
	}

	quote, err := s.categories.Estimate(categoryID)
	if err != nil {
		return nil, err
	}

	imagePath := ""
	if len(urls) > 0 {
		imagePath = urls[0]
	}
	product, err := s.repo.Upsert(ctx, hash, imagePath, quote.Charge)
	if err != nil {
		return nil, err
	}

	return &models.UploadResult{
		Hash:           product.Hash,
		ShippingCharge: product.ShippingCharge,
		Existing:       existing != nil,
		SessionID:      session,
		Variants:       urls,
		Failures:       batch.Failures,
	}, nil
}

// LookupByImage returns the stored charge for the image's hash.
// An unknown hash yields a lookup with a nil charge, not an error.
func (s *ProductService) LookupByImage(ctx context.Context, imageBytes []byte) (*models.ShippingLookup, error) {
	hash, err := phash.Hash(imageBytes)
	if err != nil {
		return nil, err
	}

	product, err := s.repo.FindByHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	if product == nil {
		log.Printf("🔍 No product stored for hash %s", hash)
		return &models.ShippingLookup{Hash: hash}, nil
	}

	charge := product.ShippingCharge
	return &models.ShippingLookup{Hash: hash, ShippingCharge: &charge}, nil
}

// SyncCharge stores the charge the marketplace reported for a hash
func (s *ProductService) SyncCharge(ctx context.Context, hash string, charge int64) (*models.Product, error) {
	hash = strings.ToLower(strings.TrimSpace(hash))
	if err := phash.Validate(hash); err != nil {
		return nil, err
	}
	if charge < 0 {
		return nil, fmt.Errorf("%w: %d", models.ErrInvalidCharge, charge)
	}
	return s.repo.SyncCharge(ctx, hash, charge)
}
