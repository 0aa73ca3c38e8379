package repository

import (
	"context"

	"variant-studio/models"
)

// ProductRepositoryInterface defines the contract for product storage keyed by perceptual hash
type ProductRepositoryInterface interface {
	// FindByHash returns nil, nil when no product has the hash
	FindByHash(ctx context.Context, hash string) (*models.Product, error)
	Upsert(ctx context.Context, hash, imagePath string, charge int64) (*models.Product, error)
	// SyncCharge updates only the charge, creating the product with an empty image path if needed
	SyncCharge(ctx context.Context, hash string, charge int64) (*models.Product, error)
}
