package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/kulinernusantara/backend/pkg/errors"
)

// Helper functions shared by all handlers.
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// decodeJSONBody decodes a request body, writing the error response itself so
// callers can just return.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return err
	}
	return nil
}

// respondWithAppError maps application error types to HTTP status codes.
// Validation errors carry the field-keyed message map so clients can mark
// individual inputs.
func respondWithAppError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
		case apperrors.ErrorTypeValidation:
			if len(appErr.Fields) > 0 {
				respondWithJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
					"error":  appErr.Message,
					"fields": appErr.Fields,
				})
				return
			}
			respondWithError(w, http.StatusBadRequest, appErr.Message)
		case apperrors.ErrorTypeUnauthorized:
			respondWithError(w, http.StatusUnauthorized, appErr.Message)
		case apperrors.ErrorTypeConflict:
			respondWithError(w, http.StatusConflict, appErr.Message)
		default:
			respondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}
