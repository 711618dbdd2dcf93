// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent, so the error can only be logged.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// safeErrorMarkers identify validation-style messages that are fine to show
// to users verbatim.
var safeErrorMarkers = []string{
	"required",
	"invalid",
	"not found",
	"must be",
	"cannot be",
	"too long",
	"too short",
	"no text provided",
	"unavailable",
}

// SafeError sanitizes error messages before returning them to users.
// Validation errors pass through unchanged. Server errors surface their
// message with secrets masked; any other unrecognized message is replaced
// with a generic one. Everything masked is also logged.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	if code >= 500 {
		sanitized := SanitizeError(err)
		slog.Default().Error("request failed",
			slog.String("status", http.StatusText(code)),
			slog.Int("code", code),
			slog.String("error", sanitized))
		JSON(w, code, map[string]string{"error": sanitized})
		return
	}

	msg := err.Error()
	lowerMsg := strings.ToLower(msg)
	for _, marker := range safeErrorMarkers {
		if strings.Contains(lowerMsg, marker) {
			JSON(w, code, map[string]string{"error": msg})
			return
		}
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": "internal server error"})
}
