// Package analyze implements the text analysis use case: surface metrics,
// per-paragraph sentiment, and readability flags in a single pass.
package analyze

import (
	"context"
	"log/slog"

	"textlens/internal/analysis/heuristic"
	"textlens/internal/analysis/tokenize"
	"textlens/internal/infra/sentiment"
	"textlens/internal/stats"
)

// paragraphLimit is the maximum number of runes handed to the sentiment
// backend per paragraph.
const paragraphLimit = 512

// previewLimit is the maximum preview length in runes.
const previewLimit = 50

// Overall sentiment labels derived from paragraph counts.
const (
	OverallPositive = "Mostly Positive"
	OverallNegative = "Mostly Negative"
	OverallNeutral  = "Neutral"
)

// ParagraphSentiment is the classification of one paragraph.
type ParagraphSentiment struct {
	Preview       string  `json:"preview"`
	FullParagraph string  `json:"full_paragraph"`
	Label         string  `json:"label"`
	Score         float64 `json:"score"`
}

// Analysis is the full metrics and sentiment report for a text.
type Analysis struct {
	CharCount          int                  `json:"char_count"`
	WordCount          int                  `json:"word_count"`
	SentenceCount      int                  `json:"sentence_count"`
	AvgWordLength      float64              `json:"avg_word_length"`
	AvgSentenceLength  float64              `json:"avg_sentence_length"`
	OverallSentiment   string               `json:"overall_sentiment"`
	PositiveParagraphs int                  `json:"positive_paragraphs"`
	NegativeParagraphs int                  `json:"negative_paragraphs"`
	SentimentResults   []ParagraphSentiment `json:"sentiment_results"`
}

// Result pairs the analysis with any readability flags.
type Result struct {
	Analysis          Analysis
	ReadabilityIssues []heuristic.ReadabilityIssue
}

// Service provides the text analysis use case.
type Service struct {
	Analyzer sentiment.Analyzer
	Stats    *stats.Store
}

// Analyze measures text and classifies each paragraph's sentiment. A failing
// sentiment backend degrades that paragraph to neutral instead of failing
// the whole analysis.
func (s *Service) Analyze(ctx context.Context, text string) (*Result, error) {
	m := tokenize.Measure(text)
	s.Stats.Record(int64(m.WordCount), 0, 0)

	results := make([]ParagraphSentiment, 0)
	var positive, negative int

	for i, para := range tokenize.ValidParagraphs(text) {
		res, err := s.Analyzer.Analyze(ctx, tokenize.Truncate(para, paragraphLimit))
		if err != nil {
			slog.WarnContext(ctx, "sentiment backend failed, degrading to neutral",
				slog.Int("paragraph", i),
				slog.String("backend", s.Analyzer.Name()),
				slog.String("error", err.Error()))
			res = sentiment.Neutral()
		}

		switch res.Label {
		case sentiment.LabelPositive:
			positive++
		case sentiment.LabelNegative:
			negative++
		}

		results = append(results, ParagraphSentiment{
			Preview:       tokenize.Preview(para, previewLimit),
			FullParagraph: para,
			Label:         res.Label,
			Score:         res.Score,
		})
	}

	readability := heuristic.Readability(m)
	if readability == nil {
		readability = []heuristic.ReadabilityIssue{}
	}

	return &Result{
		Analysis: Analysis{
			CharCount:          m.CharCount,
			WordCount:          m.WordCount,
			SentenceCount:      m.SentenceCount,
			AvgWordLength:      m.AvgWordLength,
			AvgSentenceLength:  m.AvgSentenceLength,
			OverallSentiment:   overallLabel(positive, negative),
			PositiveParagraphs: positive,
			NegativeParagraphs: negative,
			SentimentResults:   results,
		},
		ReadabilityIssues: readability,
	}, nil
}

func overallLabel(positive, negative int) string {
	switch {
	case positive > negative:
		return OverallPositive
	case negative > positive:
		return OverallNegative
	default:
		return OverallNeutral
	}
}
