package service

import (
	"context"

	"variant-studio/models"
)

// ProductServiceInterface defines the contract for hash-keyed product operations
type ProductServiceInterface interface {
	Upload(ctx context.Context, imageBytes []byte, categoryID string) (*models.UploadResult, error)
	LookupByImage(ctx context.Context, imageBytes []byte) (*models.ShippingLookup, error)
	SyncCharge(ctx context.Context, hash string, charge int64) (*models.Product, error)
}
