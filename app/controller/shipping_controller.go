package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"variant-studio/models"
	"variant-studio/shipping"
)

// ShippingController handles HTTP requests for the slab calculator
type ShippingController struct{}

// NewShippingController creates a new ShippingController
func NewShippingController() *ShippingController {
	return &ShippingController{}
}

// Calculate handles POST /api/shipping/calculate
// Body: {"weight": 0.4, "zone": "NATIONAL"}
func (c *ShippingController) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.ShippingCalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.Weight == nil || req.Zone == "" {
		http.Error(w, "Missing weight or zone", http.StatusBadRequest)
		return
	}

	zone, err := shipping.ParseZone(req.Zone)
	if err != nil {
		writeError(w, "calculate shipping", err)
		return
	}
	quote, err := shipping.Calculate(*req.Weight, zone)
	if err != nil {
		writeError(w, "calculate shipping", err)
		return
	}

	writeJSON(w, http.StatusOK, quote)
}
