package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"variant-studio/models"
)

// maxUploadBytes caps multipart bodies
const maxUploadBytes = 25 << 20

// writeJSON encodes v with the given status
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}

// writeError maps err onto 400 (caller mistake), 404 (missing) or 500
func writeError(w http.ResponseWriter, action string, err error) {
	status := http.StatusInternalServerError
	switch {
	case models.IsBadInput(err):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	default:
		log.Printf("❌ Failed to %s: %v", action, err)
	}
	http.Error(w, fmt.Sprintf("Failed to %s: %v", action, err), status)
}

// readImage reads the "image" file field of a multipart request
func readImage(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, fmt.Sprintf("Invalid multipart form: %v", err), http.StatusBadRequest)
		return nil, false
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "No image provided", http.StatusBadRequest)
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read image: %v", err), http.StatusBadRequest)
		return nil, false
	}
	if len(data) == 0 {
		http.Error(w, "No image provided", http.StatusBadRequest)
		return nil, false
	}
	return data, true
}
