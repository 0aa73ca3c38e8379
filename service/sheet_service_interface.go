package service

import (
	"context"

	"variant-studio/models"
)

// SheetRendererInterface defines the contract for printing a batch contact sheet.
// Variant files must already exist in ws under their archive names.
type SheetRendererInterface interface {
	RenderPDF(ctx context.Context, ws *Workspace, categoryID string, variants []models.RenderedVariant) ([]byte, error)
}
