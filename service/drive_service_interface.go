package service

import (
	"context"
	"io"

	"variant-studio/models"
)

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	UploadFile(ctx context.Context, folderID, name, mimeType string, r io.Reader) (*models.PublishedFile, error)
}
