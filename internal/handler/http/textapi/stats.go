package textapi

import (
	"net/http"

	"textlens/internal/handler/http/respond"
	"textlens/internal/stats"
)

// StatsHandler serves GET /stats.
type StatsHandler struct{ Store *stats.Store }

func (h StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.Store.Snapshot())
}

// ResetHandler serves POST /reset.
type ResetHandler struct{ Store *stats.Store }

func (h ResetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Store.Reset()

	respond.JSON(w, http.StatusOK, struct {
		Message string         `json:"message"`
		Stats   stats.Snapshot `json:"stats"`
	}{
		Message: "Stats reset successfully",
		Stats:   h.Store.Snapshot(),
	})
}
