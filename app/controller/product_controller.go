package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"variant-studio/models"
	"variant-studio/phash"
	"variant-studio/service"
)

// defaultCategoryID is used when an upload names no category (Men T-shirts)
const defaultCategoryID = "10000"

// ProductController handles HTTP requests keyed by an image's perceptual hash
type ProductController struct {
	products service.ProductServiceInterface
}

// NewProductController creates a new ProductController
func NewProductController(products service.ProductServiceInterface) *ProductController {
	return &ProductController{products: products}
}

// Upload handles POST /api/upload
// Multipart fields: image (file), categoryId (optional, defaults to 10000)
func (c *ProductController) Upload(w http.ResponseWriter, r *http.Request) {
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

	result, err := c.products.Upload(r.Context(), image, categoryID)
	if err != nil {
		writeError(w, "process upload", err)
		return
	}

	log.Printf("✓ Upload processed: hash=%s charge=%d variants=%d", result.Hash, result.ShippingCharge, len(result.Variants))
	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
		*models.UploadResult
	}{"Uploaded and processed successfully", result})
}

// GetShipping handles POST /api/get-shipping
// Responds 404 with a null charge when the image was never uploaded
func (c *ProductController) GetShipping(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	image, ok := readImage(w, r)
	if !ok {
		return
	}

	lookup, err := c.products.LookupByImage(r.Context(), image)
	if err != nil {
		writeError(w, "look up shipping", err)
		return
	}
	if lookup.ShippingCharge == nil {
		lookup.Message = "No shipping charge found for this image"
		writeJSON(w, http.StatusNotFound, lookup)
		return
	}
	writeJSON(w, http.StatusOK, lookup)
}

// MeeshoSync handles POST /api/meesho-sync
// Body: {"hash": "0f0f0f0f0f0f0f0f", "charge": 72}
func (c *ProductController) MeeshoSync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SyncChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.Hash == "" || req.Charge == nil {
		http.Error(w, "Missing hash or charge", http.StatusBadRequest)
		return
	}

	product, err := c.products.SyncCharge(r.Context(), req.Hash, *req.Charge)
	if err != nil {
		writeError(w, "sync charge", err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Message string          `json:"message"`
		Product *models.Product `json:"product"`
	}{"Synchronized with Meesho successfully", product})
}

// HashDistance handles POST /api/hash/distance
// Body: {"a": "...", "b": "..."}
func (c *ProductController) HashDistance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.HashDistanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	d, err := phash.Distance(req.A, req.B)
	if err != nil {
		writeError(w, "compare hashes", err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Distance    int `json:"distance"`
		MaxDistance int `json:"maxDistance"`
	}{d, len(req.A) * 4})
}
