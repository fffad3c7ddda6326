package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"madeireira-orcamento/models"
)

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrRenderFailure), errors.Is(err, models.ErrDataCorruption):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrEmptySelection),
		errors.Is(err, models.ErrIndexOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and writes it with the status matching its kind
func writeError(w http.ResponseWriter, op string, err error) {
	log.Printf("❌ %s: %v", op, err)
	http.Error(w, err.Error(), statusFor(err))
}

// writeJSON encodes body as the JSON response
func writeJSON(w http.ResponseWriter, op string, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("❌ %s: Error encoding response: %v", op, err)
	}
}

// decodeBody decodes the JSON request body into dst, answering 400 on failure
func decodeBody(w http.ResponseWriter, r *http.Request, op string, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Printf("❌ %s: Failed to decode request body: %v", op, err)
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}
