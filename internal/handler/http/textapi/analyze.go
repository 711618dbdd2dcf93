package textapi

import (
	"net/http"

	"textlens/internal/analysis/heuristic"
	"textlens/internal/handler/http/respond"
	"textlens/internal/stats"
	analyzeUC "textlens/internal/usecase/analyze"
)

// AnalyzeHandler serves POST /analyze.
type AnalyzeHandler struct{ Svc *analyzeUC.Service }

func (h AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTextRequest(w, r)
	if !ok {
		return
	}

	result, err := h.Svc.Analyze(r.Context(), *req.Text)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, struct {
		Analysis          analyzeUC.Analysis           `json:"analysis"`
		ReadabilityIssues []heuristic.ReadabilityIssue `json:"readability_issues"`
		Stats             stats.Snapshot               `json:"stats"`
	}{
		Analysis:          result.Analysis,
		ReadabilityIssues: result.ReadabilityIssues,
		Stats:             h.Svc.Stats.Snapshot(),
	})
}
