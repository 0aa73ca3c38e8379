package service

import (
	"context"

	"variant-studio/models"
)

// ArchiveOptions tunes a single archive run
type ArchiveOptions struct {
	// Count is the number of templates to render; zero means the whole catalog
	Count int
	// Sheet adds a PDF contact sheet to the archive
	Sheet bool
}

// ArchiveServiceInterface defines the contract for the ZIP generate flow
type ArchiveServiceInterface interface {
	Generate(ctx context.Context, imageBytes []byte, categoryID string, opts ArchiveOptions) (*models.Archive, error)
}
