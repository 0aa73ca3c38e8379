package service

import (
	"context"

	"variant-studio/models"
)

// VariantServiceInterface defines the contract for batch variant generation
type VariantServiceInterface interface {
	GenerateBatch(ctx context.Context, imageBytes []byte, categoryID string, count int) (*models.Batch, error)
}
