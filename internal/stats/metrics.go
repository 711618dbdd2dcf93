package stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus mirrors of the usage counters. Unlike the API counters these are
// never reset; they follow the usual monotonic counter contract.
var (
	wordsCheckedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "textlens_words_checked_total",
			Help: "Total number of words processed across all endpoints",
		},
	)

	grammarErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "textlens_grammar_errors_found_total",
			Help: "Total number of grammar issues reported",
		},
	)

	suggestionsMadeTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "textlens_suggestions_made_total",
			Help: "Total number of improvement suggestions returned",
		},
	)
)

func recordToPrometheus(words, errors, suggestions int64) {
	if words > 0 {
		wordsCheckedTotal.Add(float64(words))
	}
	if errors > 0 {
		grammarErrorsTotal.Add(float64(errors))
	}
	if suggestions > 0 {
		suggestionsMadeTotal.Add(float64(suggestions))
	}
}
