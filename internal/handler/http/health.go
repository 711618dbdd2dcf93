// Package http provides HTTP handlers and middleware for the text analysis API.
// It includes the health check endpoint, metrics collection, and the shared
// middleware chain.
package http

import (
	"net/http"

	"textlens/internal/handler/http/respond"
)

// Named identifies a pluggable backend for health reporting.
type Named interface {
	Name() string
}

// HealthResponse is the JSON body of the health check endpoint.
type HealthResponse struct {
	Status     string            `json:"status"`
	Version    string            `json:"version"`
	Components map[string]string `json:"components"`
	Backends   map[string]string `json:"backends"`
}

// HealthHandler reports service status and which backend serves each
// component. Backends are constructed at startup, so every component is
// active whenever the process answers.
type HealthHandler struct {
	Version   string
	Grammar   Named
	Sentiment Named
	Generator Named
}

// ServeHTTP implements http.Handler.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: h.Version,
		Components: map[string]string{
			"grammar_check":      "active",
			"sentiment_analysis": "active",
			"text_generation":    "active",
		},
		Backends: map[string]string{
			"grammar_check":      h.Grammar.Name(),
			"sentiment_analysis": h.Sentiment.Name(),
			"text_generation":    h.Generator.Name(),
		},
	})
}
