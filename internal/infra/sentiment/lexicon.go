package sentiment

import (
	"context"
	"strings"

	"textlens/internal/analysis/tokenize"
)

var positiveWords = map[string]struct{}{
	"good": {}, "great": {}, "excellent": {}, "wonderful": {}, "amazing": {},
	"love": {}, "happy": {}, "best": {}, "fantastic": {}, "perfect": {},
	"beautiful": {}, "brilliant": {}, "delight": {}, "enjoy": {}, "helpful": {},
	"impressive": {}, "like": {}, "nice": {}, "pleasant": {}, "positive": {},
	"recommend": {}, "success": {}, "superb": {}, "thanks": {}, "useful": {},
}

var negativeWords = map[string]struct{}{
	"bad": {}, "terrible": {}, "awful": {}, "horrible": {}, "worst": {},
	"hate": {}, "sad": {}, "angry": {}, "poor": {}, "disappointing": {},
	"broken": {}, "confusing": {}, "difficult": {}, "dislike": {}, "fail": {},
	"failure": {}, "negative": {}, "problem": {}, "slow": {}, "ugly": {},
	"unhappy": {}, "useless": {}, "waste": {}, "wrong": {}, "annoying": {},
}

// Lexicon scores text by counting hits against small positive and negative
// word lists. It is the default backend: no network, no API key, always
// available. Confidence grows with the margin between the two counts and is
// capped well below certainty.
type Lexicon struct{}

// NewLexicon creates the word-list analyzer.
func NewLexicon() *Lexicon {
	return &Lexicon{}
}

// Name implements Analyzer.
func (l *Lexicon) Name() string { return "lexicon" }

// Analyze implements Analyzer. It never fails.
func (l *Lexicon) Analyze(_ context.Context, text string) (Result, error) {
	var pos, neg int
	for _, w := range tokenize.Words(text) {
		w = strings.ToLower(w)
		if _, ok := positiveWords[w]; ok {
			pos++
		}
		if _, ok := negativeWords[w]; ok {
			neg++
		}
	}

	switch {
	case pos > neg:
		return Result{Label: LabelPositive, Score: confidence(pos - neg)}, nil
	case neg > pos:
		return Result{Label: LabelNegative, Score: confidence(neg - pos)}, nil
	default:
		return Neutral(), nil
	}
}

// confidence maps a hit margin to a score in (0.5, 0.95].
func confidence(margin int) float64 {
	score := 0.5 + 0.1*float64(margin)
	if score > 0.95 {
		return 0.95
	}
	return score
}
