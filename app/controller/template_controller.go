package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"variant-studio/catalog"
	"variant-studio/models"
	"variant-studio/shipping"
)

// TemplateController handles HTTP requests for the template catalog
type TemplateController struct {
	categories *shipping.CategoryTable
}

// NewTemplateController creates a new TemplateController
func NewTemplateController(categories *shipping.CategoryTable) *TemplateController {
	return &TemplateController{categories: categories}
}

// ListTemplates handles GET /api/templates?count=N
func (c *TemplateController) ListTemplates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	count := catalog.MaxTemplates
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid count: %s", raw), http.StatusBadRequest)
			return
		}
		count = n
	}

	templates, err := catalog.Generate(count)
	if err != nil {
		writeError(w, "generate templates", err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Count     int               `json:"count"`
		Templates []models.Template `json:"templates"`
	}{len(templates), templates})
}

// ListCategories handles GET /api/categories
func (c *TemplateController) ListCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, c.categories.All())
}
