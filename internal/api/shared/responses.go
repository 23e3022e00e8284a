package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/savori/savory-api/internal/store"
)

// Envelope is the response shape shared by every JSON endpoint.
// Error is false on success and true on failure; Data carries the payload;
// Pagination is present only on list responses.
type Envelope struct {
	Error      bool              `json:"error"`
	Data       any               `json:"data,omitempty"`
	Message    string            `json:"message,omitempty"`
	Pagination *store.Pagination `json:"pagination,omitempty"`
	TraceID    string            `json:"trace_id,omitempty"`
}

// RespondWithData writes a success envelope with the given status, payload
// and message.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data any, message string) {
	writeJSON(w, status, Envelope{
		Error:   false,
		Data:    data,
		Message: message,
	})
}

// RespondWithPage writes a success envelope for a list endpoint, attaching
// the pagination block.
func RespondWithPage(
	w http.ResponseWriter,
	r *http.Request,
	data any,
	pagination store.Pagination,
) {
	writeJSON(w, http.StatusOK, Envelope{
		Error:      false,
		Data:       data,
		Pagination: &pagination,
	})
}

// RespondWithError writes an error envelope with the given status code and
// message. The trace ID from the request context is included for
// correlation.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	writeJSON(w, status, Envelope{
		Error:   true,
		Message: message,
		TraceID: traceID,
	})
}

// RespondWithErrorAndLog writes an error envelope and logs the underlying
// error. Only the sanitized userMessage reaches the client; the raw error
// stays in the logs.
//
// Log level strategy: 5xx at ERROR, everything else at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	writeJSON(w, status, Envelope{
		Error:   true,
		Message: userMessage,
		TraceID: traceID,
	})
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}
