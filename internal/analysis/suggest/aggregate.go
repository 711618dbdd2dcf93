// Package suggest combines heuristic scan results into the categorized
// suggestion bundle returned by the improvement endpoint.
package suggest

import (
	"textlens/internal/analysis/heuristic"
	"textlens/internal/analysis/tokenize"
)

// Thresholds for the general free-text advice.
const (
	manyLongSentences = 2
	manyPassiveVoice  = 2
	shortTextWords    = 100
	longTextWords     = 1000
)

// Fixed advice strings. Kept stable so clients can rely on them.
const (
	adviceShorten  = "Consider breaking long sentences into shorter ones for clarity."
	adviceActive   = "Try using more active voice to make your writing more engaging and direct."
	adviceExpand   = "Your text is quite short. Consider expanding your ideas for more depth."
	adviceOrganize = "Your text is quite long. Consider organizing it into clear sections."
)

// Bundle is the categorized suggestion set for one text. All slices are
// non-nil so they serialize as JSON arrays.
type Bundle struct {
	LongSentences []heuristic.LongSentence `json:"long_sentences"`
	PassiveVoice  []heuristic.PassiveVoice `json:"passive_voice"`
	RepeatedWords []heuristic.RepeatedWord `json:"repeated_words"`
	General       []string                 `json:"general_suggestions"`
}

// Build scans the text and assembles the suggestion bundle. General advice is
// gated by fixed thresholds; the short-text and long-text advices are
// mutually exclusive.
func Build(text string) Bundle {
	report := heuristic.Scan(text)
	words := tokenize.CountWords(text)

	general := make([]string, 0, 3)
	if len(report.LongSentences) > manyLongSentences {
		general = append(general, adviceShorten)
	}
	if len(report.PassiveVoice) > manyPassiveVoice {
		general = append(general, adviceActive)
	}
	if words < shortTextWords {
		general = append(general, adviceExpand)
	} else if words > longTextWords {
		general = append(general, adviceOrganize)
	}

	return Bundle{
		LongSentences: emptyIfNil(report.LongSentences),
		PassiveVoice:  emptyIfNil(report.PassiveVoice),
		RepeatedWords: emptyIfNil(report.RepeatedWords),
		General:       general,
	}
}

// Count is the total number of suggestions across all four categories. This
// is the value added to the usage counters.
func (b Bundle) Count() int {
	return len(b.LongSentences) + len(b.PassiveVoice) + len(b.RepeatedWords) + len(b.General)
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
