// Package suggest implements the writing improvement use case. The heavy
// lifting lives in the analysis packages; this service ties the suggestion
// bundle to usage statistics.
package suggest

import (
	"context"

	analysis "textlens/internal/analysis/suggest"
	"textlens/internal/analysis/tokenize"
	"textlens/internal/stats"
)

// Result pairs the suggestion bundle with its total count.
type Result struct {
	Suggestions     analysis.Bundle
	SuggestionCount int
}

// Service provides the improvement suggestion use case.
type Service struct {
	Stats *stats.Store
}

// Suggest scans text for style problems and returns grouped suggestions.
// The total count, not the word count, feeds the suggestions_made statistic.
func (s *Service) Suggest(_ context.Context, text string) (*Result, error) {
	words := tokenize.CountWords(text)
	bundle := analysis.Build(text)
	count := bundle.Count()

	s.Stats.Record(int64(words), 0, int64(count))

	return &Result{Suggestions: bundle, SuggestionCount: count}, nil
}
