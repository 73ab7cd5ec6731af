package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// StatusResponse is the envelope used by auth and link endpoints:
// a status marker, an optional message, and optional payload fields.
// Fields left at their zero value are omitted from the JSON.
type StatusResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Token   string      `json:"token,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	ID      interface{} `json:"id,omitempty"`
}

// ValidationErrorResponse is the shape returned when request validation
// fails: per-field message lists under "erros", as the API has always
// spelled it.
type ValidationErrorResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Erros   map[string][]string `json:"erros"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a status/message error envelope.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, StatusResponse{
		Status:  "error",
		Message: message,
	})
}

// RespondWithValidationErrors writes the legacy validation error shape.
// The message varies by endpoint family ("Validation Errors" on auth and
// simple creates, "Erro de Validação" on links), so callers supply it.
func RespondWithValidationErrors(w http.ResponseWriter, r *http.Request, status int, message string, erros map[string][]string) {
	slog.Debug("sending validation error response",
		"status_code", status,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ValidationErrorResponse{
		Status:  "error",
		Message: message,
		Erros:   erros,
	})
}

// RespondWithInternalError logs the underlying error with its trace ID and
// returns an opaque 500 response. The raw error is never exposed to the
// caller.
func RespondWithInternalError(w http.ResponseWriter, r *http.Request, err error) {
	traceID := GetTraceID(r.Context())

	attrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}
	slog.LogAttrs(r.Context(), slog.LevelError, "internal server error", attrs...)

	RespondWithJSON(w, r, http.StatusInternalServerError, StatusResponse{
		Status:  "error",
		Message: "Internal Server Error",
	})
}
