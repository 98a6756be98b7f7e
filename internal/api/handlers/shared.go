package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/apperrors"
	"github.com/jvandermeer/Private-Markets-Performance-Backend/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondServiceError maps service layer errors onto HTTP status codes:
// validation failures become 400, missing entities 404, everything else
// 500 with the generic message.
func respondServiceError(w http.ResponseWriter, err error, message string) {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"detail": vErr.Fields,
		})
		return
	}

	if errors.Is(err, validation.ErrInvalidUUID) || errors.Is(err, apperrors.ErrInvalidDateRange) {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  message,
			"detail": err.Error(),
		})
		return
	}

	if errors.Is(err, apperrors.ErrSpaceNotFound) ||
		errors.Is(err, apperrors.ErrAssetNotFound) ||
		errors.Is(err, apperrors.ErrCashFlowNotFound) ||
		errors.Is(err, apperrors.ErrSnapshotNotFound) {
		respondJSON(w, http.StatusNotFound, map[string]string{
			"error":  message,
			"detail": err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusInternalServerError, map[string]string{
		"error":  message,
		"detail": err.Error(),
	})
}
