package handler

import (
	"encoding/json"
	"net/http"

	apperrors "resume-parser/pkg/errors"
)

type contextKey string

const requestIDContextKey contextKey = "request_id"

// GetRequestID extracts the request ID from request context
func GetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDContextKey).(string)
	return id
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an AppError as {"error", "type", "details"}
func writeError(w http.ResponseWriter, err *apperrors.AppError) {
	writeJSON(w, err.StatusCode, err)
}
