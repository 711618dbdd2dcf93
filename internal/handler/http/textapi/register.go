package textapi

import (
	"net/http"

	"textlens/internal/stats"
	analyzeUC "textlens/internal/usecase/analyze"
	completeUC "textlens/internal/usecase/complete"
	grammarUC "textlens/internal/usecase/grammar"
	suggestUC "textlens/internal/usecase/suggest"
)

// Services bundles the use case services behind the text analysis endpoints.
type Services struct {
	Grammar  *grammarUC.Service
	Analyze  *analyzeUC.Service
	Suggest  *suggestUC.Service
	Complete *completeUC.Service
	Stats    *stats.Store
}

// Register registers all text analysis HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svcs Services) {
	mux.Handle("GET  /stats", StatsHandler{svcs.Stats})
	mux.Handle("POST /reset", ResetHandler{svcs.Stats})

	mux.Handle("POST /check-grammar", GrammarHandler{svcs.Grammar})
	mux.Handle("POST /analyze", AnalyzeHandler{svcs.Analyze})
	mux.Handle("POST /suggest", SuggestHandler{svcs.Suggest})
	mux.Handle("POST /complete", CompleteHandler{svcs.Complete})
}
