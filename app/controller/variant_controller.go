package controller

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"variant-studio/models"
	"variant-studio/service"
)

// VariantController handles HTTP requests for generated variant files
type VariantController struct {
	archives     service.ArchiveServiceInterface
	variants     service.VariantServiceInterface
	store        *service.VariantStore
	variantCount int
}

// NewVariantController creates a new VariantController
func NewVariantController(
	archives service.ArchiveServiceInterface,
	variants service.VariantServiceInterface,
	store *service.VariantStore,
	variantCount int,
) *VariantController {
	return &VariantController{
		archives:     archives,
		variants:     variants,
		store:        store,
		variantCount: variantCount,
	}
}

// GenerateImages handles POST /api/generate-images
// Multipart fields: image (file), categoryId (optional, defaults to 10000)
// Renders and stores variants without recording a product
func (c *VariantController) GenerateImages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	image, ok := readImage(w, r)
	if !ok {
		return
	}
	categoryID := strings.TrimSpace(r.FormValue("categoryId"))
	if categoryID == "" {
		categoryID = defaultCategoryID
	}

	batch, err := c.variants.GenerateBatch(r.Context(), image, categoryID, c.variantCount)
	if err != nil {
		writeError(w, "generate variants", err)
		return
	}

	session := c.store.NewSession()
	urls, err := c.store.SaveBatch(session, batch)
	if err != nil {
		writeError(w, "store variants", err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Message   string                  `json:"message"`
		SessionID string                  `json:"sessionId"`
		Variants  []string                `json:"variants"`
		Failures  []models.VariantFailure `json:"failures,omitempty"`
	}{fmt.Sprintf("%d variants generated successfully", len(urls)), session, urls, batch.Failures})
}

// Generate handles POST /api/generate
// Multipart fields: image (file), categoryId, count (optional), sheet=1 (optional PDF contact sheet)
// Responds with the ZIP archive as a download
func (c *VariantController) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	image, ok := readImage(w, r)
	if !ok {
		return
	}
	categoryID := strings.TrimSpace(r.FormValue("categoryId"))
	if categoryID == "" {
		http.Error(w, "Missing image or category", http.StatusBadRequest)
		return
	}

	opts := service.ArchiveOptions{Sheet: isTruthy(r.FormValue("sheet"))}
	if raw := r.FormValue("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, fmt.Sprintf("Invalid count: %s", raw), http.StatusBadRequest)
			return
		}
		opts.Count = n
	}

	archive, err := c.archives.Generate(r.Context(), image, categoryID, opts)
	if err != nil {
		writeError(w, "generate images", err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", archive.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(archive.Data)))
	w.Header().Set("X-Variant-Count", strconv.Itoa(archive.Variants))
	if len(archive.Failures) > 0 {
		w.Header().Set("X-Variant-Failures", strconv.Itoa(len(archive.Failures)))
	}
	if archive.Published != nil {
		w.Header().Set("X-Drive-File-Id", archive.Published.ID)
	}
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(archive.Data); err != nil {
		log.Printf("❌ Generate: error writing ZIP response: %v", err)
	}
}

// GetImage handles GET /api/image/{session}/{file}[?size=thumb|medium]
// Without size the stored PNG is served as is
func (c *VariantController) GetImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Path format: /api/image/{session}/{file}
	path := strings.TrimPrefix(r.URL.Path, "/api/image/")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		http.Error(w, "Image not found", http.StatusNotFound)
		return
	}
	session, file := parts[0], parts[1]

	size := r.URL.Query().Get("size")
	var (
		data        []byte
		err         error
		contentType = "image/png"
	)
	switch size {
	case "":
		data, err = c.store.Read(session, file)
	case service.SizeThumb, service.SizeMedium:
		data, err = c.store.Preview(session, file, size)
		contentType = "image/jpeg"
	default:
		http.Error(w, fmt.Sprintf("Invalid size: %s (expected thumb or medium)", size), http.StatusBadRequest)
		return
	}
	if err != nil {
		writeError(w, "load image", err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
