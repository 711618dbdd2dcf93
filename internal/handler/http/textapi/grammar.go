package textapi

import (
	"net/http"

	"textlens/internal/handler/http/respond"
	"textlens/internal/stats"
	grammarUC "textlens/internal/usecase/grammar"
)

// GrammarHandler serves POST /check-grammar.
type GrammarHandler struct{ Svc *grammarUC.Service }

func (h GrammarHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTextRequest(w, r)
	if !ok {
		return
	}

	result, err := h.Svc.Check(r.Context(), *req.Text)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, struct {
		GrammarIssues []grammarUC.Issue `json:"grammar_issues"`
		TotalIssues   int               `json:"total_issues"`
		Stats         stats.Snapshot    `json:"stats"`
	}{
		GrammarIssues: result.Issues,
		TotalIssues:   result.TotalIssues,
		Stats:         h.Svc.Stats.Snapshot(),
	})
}
