// Package heuristic applies stateless pattern scans over tokenized text to
// surface writing problems: overlong sentences, passive voice, and
// accidentally repeated words. Each scan is a pure function of the input.
//
// Pattern matches are attached to their containing sentence by byte-span
// overlap against the segmentation from the tokenize package. Attachment can
// therefore never silently drop a match over punctuation differences.
package heuristic

import (
	"regexp"
	"strings"

	"textlens/internal/analysis/tokenize"
)

// longSentenceWords is the word count above which a sentence is flagged.
const longSentenceWords = 25

// passivePattern approximates English passive constructions: a form of "to
// be" followed by a regular past participle or one of the common irregulars.
// Not grammatically exhaustive.
var passivePattern = regexp.MustCompile(
	`(?i)\b(?:am|is|are|was|were|be|been|being)\s+(\w+ed|written|done|made|said|known|gone|taken)\b`)

// LongSentence flags a sentence whose word count exceeds the threshold.
type LongSentence struct {
	Sentence  string `json:"sentence"`
	WordCount int    `json:"word_count"`
}

// PassiveVoice records one passive construction and the sentence it occurs in.
type PassiveVoice struct {
	Sentence string `json:"sentence"`
	Match    string `json:"match"`
}

// RepeatedWord records a word immediately followed by itself.
type RepeatedWord struct {
	Sentence string `json:"sentence"`
	Word     string `json:"repeated_word"`
}

// ReadabilityIssue is a flag derived from average sentence length crossing a
// fixed threshold.
type ReadabilityIssue struct {
	Issue   string `json:"issue"`
	Message string `json:"message"`
}

// Report bundles the results of all scans over one text.
type Report struct {
	LongSentences []LongSentence
	PassiveVoice  []PassiveVoice
	RepeatedWords []RepeatedWord
}

// Scan runs all three scans over the text using a single sentence
// segmentation pass.
func Scan(text string) Report {
	sentences := tokenize.Sentences(text)
	return Report{
		LongSentences: scanLongSentences(sentences),
		PassiveVoice:  scanPassiveVoice(text, sentences),
		RepeatedWords: scanRepeatedWords(text, sentences),
	}
}

func scanLongSentences(sentences []tokenize.Sentence) []LongSentence {
	var out []LongSentence
	for _, s := range sentences {
		n := tokenize.CountWords(s.Text)
		if n > longSentenceWords {
			out = append(out, LongSentence{Sentence: s.Text, WordCount: n})
		}
	}
	return out
}

func scanPassiveVoice(text string, sentences []tokenize.Sentence) []PassiveVoice {
	var out []PassiveVoice
	for _, span := range passivePattern.FindAllStringIndex(text, -1) {
		out = append(out, PassiveVoice{
			Sentence: containingSentence(sentences, span[0], span[1]),
			Match:    text[span[0]:span[1]],
		})
	}
	return out
}

// scanRepeatedWords finds words immediately followed by themselves,
// case-insensitively, separated only by whitespace. Go's regexp has no
// backreferences, so adjacent word spans are compared directly. Matched pairs
// are consumed without overlap, so a triple repeat yields one finding.
func scanRepeatedWords(text string, sentences []tokenize.Sentence) []RepeatedWord {
	spans := tokenize.WordSpans(text)
	var out []RepeatedWord
	for i := 1; i < len(spans); i++ {
		prev := text[spans[i-1][0]:spans[i-1][1]]
		cur := text[spans[i][0]:spans[i][1]]
		if !strings.EqualFold(prev, cur) {
			continue
		}
		if strings.TrimSpace(text[spans[i-1][1]:spans[i][0]]) != "" {
			continue
		}
		out = append(out, RepeatedWord{
			Sentence: containingSentence(sentences, spans[i-1][0], spans[i][1]),
			Word:     prev,
		})
		i++
	}
	return out
}

// containingSentence returns the text of the first sentence whose span
// overlaps [start, end). Sentences cover all non-whitespace input, so a word
// or pattern match always lands in exactly one; the empty string is returned
// only for a degenerate empty span.
func containingSentence(sentences []tokenize.Sentence, start, end int) string {
	for _, s := range sentences {
		if start < s.End && end > s.Start {
			return s.Text
		}
	}
	return ""
}

// Readability derives at most one issue from the measured averages: flag long
// sentences first, otherwise flag choppy short sentences when there are
// enough of them to judge.
func Readability(m tokenize.Metrics) []ReadabilityIssue {
	switch {
	case m.AvgSentenceLength > 25:
		return []ReadabilityIssue{{
			Issue:   "long_sentences",
			Message: "Sentences are quite long on average. Consider breaking some into shorter ones for better readability.",
		}}
	case m.AvgSentenceLength < 10 && m.SentenceCount > 3:
		return []ReadabilityIssue{{
			Issue:   "short_sentences",
			Message: "Sentences are quite short on average. Consider combining some related ideas for better flow.",
		}}
	}
	return nil
}
