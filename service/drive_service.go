package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"variant-studio/models"
)

// DriveService publishes generated archives to a Google Drive folder
// Implements DriveServiceInterface
type DriveService struct {
	client *drive.Service
}

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(ctx context.Context, credentialsPath string) (*DriveService, error) {
	// option.WithCredentialsFile automatically handles Service Account authentication
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client: driveService,
	}, nil
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// UploadFile creates name inside folderID with the content of r
func (ds *DriveService) UploadFile(ctx context.Context, folderID, name, mimeType string, r io.Reader) (*models.PublishedFile, error) {
	log.Printf("📤 Uploading %s to Drive folder %s", name, folderID)

	meta := &drive.File{
		Name:     name,
		MimeType: mimeType,
		Parents:  []string{folderID},
	}

	created, err := ds.client.Files.Create(meta).
		Media(r).
		SupportsAllDrives(true).
		Fields("id, name, webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", name, err)
	}

	log.Printf("✓ Uploaded %s (id=%s)", created.Name, created.Id)
	return &models.PublishedFile{
		ID:   created.Id,
		Name: created.Name,
		Link: created.WebViewLink,
	}, nil
}
