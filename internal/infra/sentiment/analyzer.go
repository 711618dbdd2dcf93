// Package sentiment provides text sentiment classification backends.
//
// Two implementations are available: a dependency-free lexicon scorer and
// an OpenAI chat-completion classifier. Both return a label and a
// confidence score in [0, 1].
package sentiment

import "context"

// Sentiment labels. These values appear verbatim in API responses.
const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
	LabelNeutral  = "NEUTRAL"
)

// Result is a single classification outcome.
type Result struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Analyzer classifies the sentiment of a piece of text.
type Analyzer interface {
	// Analyze returns the sentiment of text. Implementations should treat
	// text as already truncated to a reasonable length by the caller.
	Analyze(ctx context.Context, text string) (Result, error)

	// Name identifies the backend for logging and health reporting.
	Name() string
}

// Neutral is the degraded result used when a backend fails.
func Neutral() Result {
	return Result{Label: LabelNeutral, Score: 0.5}
}
