package textapi

import (
	"net/http"

	analysis "textlens/internal/analysis/suggest"
	"textlens/internal/handler/http/respond"
	"textlens/internal/stats"
	suggestUC "textlens/internal/usecase/suggest"
)

// SuggestHandler serves POST /suggest.
type SuggestHandler struct{ Svc *suggestUC.Service }

func (h SuggestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTextRequest(w, r)
	if !ok {
		return
	}

	result, err := h.Svc.Suggest(r.Context(), *req.Text)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, struct {
		Suggestions     analysis.Bundle `json:"suggestions"`
		SuggestionCount int             `json:"suggestion_count"`
		Stats           stats.Snapshot  `json:"stats"`
	}{
		Suggestions:     result.Suggestions,
		SuggestionCount: result.SuggestionCount,
		Stats:           h.Svc.Stats.Snapshot(),
	})
}
