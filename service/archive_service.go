package service

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"log"

	"variant-studio/catalog"
	"variant-studio/models"
	"variant-studio/utils"
)

// ArchiveService renders a batch into a scratch workspace and packs it as a ZIP
// Implements ArchiveServiceInterface
type ArchiveService struct {
	variants    VariantServiceInterface
	workRoot    string
	sheets      SheetRendererInterface
	drive       DriveServiceInterface
	driveFolder string
}

// NewArchiveService creates a new ArchiveService.
// sheets and drive may be nil; the matching features are then unavailable.
func NewArchiveService(
	variants VariantServiceInterface,
	workRoot string,
	sheets SheetRendererInterface,
	drive DriveServiceInterface,
	driveFolder string,
) *ArchiveService {
	return &ArchiveService{
		variants:    variants,
		workRoot:    workRoot,
		sheets:      sheets,
		drive:       drive,
		driveFolder: driveFolder,
	}
}

// Ensure ArchiveService implements ArchiveServiceInterface
var _ ArchiveServiceInterface = (*ArchiveService)(nil)

// ArchiveName is the download name of a category's archive
func ArchiveName(categoryID string) string {
	return fmt.Sprintf("generated-images-%s.zip", categoryID)
}

// Generate renders the batch, writes image_<id>.png files (and sheet.pdf when
// asked) into a workspace, zips them and publishes the ZIP to Drive when
// configured. The workspace is always removed.
func (s *ArchiveService) Generate(ctx context.Context, imageBytes []byte, categoryID string, opts ArchiveOptions) (*models.Archive, error) {
	count := opts.Count
	if count == 0 {
		count = catalog.MaxTemplates
	}
	if opts.Sheet && s.sheets == nil {
		return nil, fmt.Errorf("contact sheets are not available")
	}

	var archive *models.Archive
	err := WithWorkspace(s.workRoot, func(ws *Workspace) error {
		log.Printf("📦 Archive session %s: %d templates for category %s", ws.ID, count, categoryID)

		batch, err := s.variants.GenerateBatch(ctx, imageBytes, categoryID, count)
		if err != nil {
			return err
		}

		files := make([]string, 0, len(batch.Variants)+1)
		for _, v := range batch.Variants {
			name := utils.ArchiveFileName(v.TemplateID)
			if _, err := ws.WriteFile(name, v.PNG); err != nil {
				return err
			}
			files = append(files, name)
		}

		hasSheet := false
		if opts.Sheet {
			pdf, err := s.sheets.RenderPDF(ctx, ws, categoryID, batch.Variants)
			if err != nil {
				return err
			}
			if _, err := ws.WriteFile(SheetFileName, pdf); err != nil {
				return err
			}
			files = append(files, SheetFileName)
			hasSheet = true
		}

		data, err := zipFiles(ws, files)
		if err != nil {
			return err
		}

		archive = &models.Archive{
			Name:     ArchiveName(categoryID),
			Data:     data,
			Variants: len(batch.Variants),
			HasSheet: hasSheet,
			Failures: batch.Failures,
		}

		if s.drive != nil && s.driveFolder != "" {
			published, err := s.drive.UploadFile(ctx, s.driveFolder, archive.Name, "application/zip", bytes.NewReader(data))
			if err != nil {
				// the archive is still returned to the caller
				log.Printf("⚠️  Failed to publish archive to Drive: %v", err)
			} else {
				archive.Published = published
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate archive: %w", err)
	}

	log.Printf("✓ Archive %s ready (%d variants, %d bytes)", archive.Name, archive.Variants, len(archive.Data))
	return archive, nil
}

// zipFiles packs the named workspace files, in order, into a ZIP
func zipFiles(ws *Workspace, files []string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, name := range files {
		data, err := ws.ReadFile(name)
		if err != nil {
			return nil, err
		}
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("failed to add %s to archive: %w", name, err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("failed to write %s to archive: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish archive: %w", err)
	}
	return buf.Bytes(), nil
}
