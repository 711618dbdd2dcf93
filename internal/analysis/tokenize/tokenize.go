// Package tokenize provides word, sentence, and paragraph segmentation for
// plain text, along with derived readability metrics. Sentence boundaries are
// returned with their byte spans so downstream scanners can attach pattern
// matches by span overlap instead of re-searching sentence text.
package tokenize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordPattern matches maximal runs of letters, digits, and underscores.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Sentence is a segmented sentence with its byte span in the original text.
// Start is inclusive, End exclusive.
type Sentence struct {
	Text  string
	Start int
	End   int
}

// Metrics holds per-request readability measurements. All values are pure
// functions of the input text.
type Metrics struct {
	CharCount         int     `json:"char_count"`
	WordCount         int     `json:"word_count"`
	SentenceCount     int     `json:"sentence_count"`
	AvgWordLength     float64 `json:"avg_word_length"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
}

// Words returns all word tokens in the text.
func Words(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// WordSpans returns the byte spans of all word tokens in the text.
func WordSpans(text string) [][]int {
	return wordPattern.FindAllStringIndex(text, -1)
}

// CountWords returns the number of word tokens in the text.
func CountWords(text string) int {
	return len(wordPattern.FindAllStringIndex(text, -1))
}

// Sentences segments text into sentences. A sentence ends at a run of
// terminators (. ! ?) absorbed together with trailing closing quotes or
// brackets, when followed by whitespace or end of input. Text after the last
// terminator forms a final sentence. Whitespace-only input yields no
// sentences.
func Sentences(text string) []Sentence {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var out []Sentence
	start := -1
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if start < 0 {
			if unicode.IsSpace(r) {
				i += size
				continue
			}
			start = i
		}
		if isTerminator(r) {
			end, closed := absorbClosers(text, i+size)
			if end >= len(text) || boundaryFollows(text[end:], closed) {
				out = append(out, Sentence{Text: text[start:end], Start: start, End: end})
				start = -1
				i = end
				continue
			}
		}
		i += size
	}
	if start >= 0 {
		trimmed := strings.TrimRightFunc(text[start:], unicode.IsSpace)
		if trimmed != "" {
			out = append(out, Sentence{Text: trimmed, Start: start, End: start + len(trimmed)})
		}
	}
	return out
}

// isTerminator reports whether r ends a sentence.
func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// absorbClosers extends a sentence end past additional terminators and
// closing punctuation, e.g. `He said "stop!".` keeps the quote and final dot.
// It reports whether any closing quote or bracket was consumed.
func absorbClosers(text string, i int) (int, bool) {
	closed := false
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case isTerminator(r):
		case r == '"' || r == '\'' || r == ')' || r == ']':
			closed = true
		default:
			return i, closed
		}
		i += size
	}
	return i, closed
}

// boundaryFollows reports whether the text after a terminator run starts a
// new sentence. A terminator followed by whitespace always ends the sentence,
// so lowercase-styled prose still segments. The one exception is a terminator
// absorbed inside closing quotes or brackets: there a lowercase continuation
// (`he said "stop!" here`) keeps the sentence going, since the quoted
// punctuation belongs to the quote, not the sentence.
func boundaryFollows(rest string, closed bool) bool {
	r, size := utf8.DecodeRuneInString(rest)
	if !unicode.IsSpace(r) {
		return false
	}
	if !closed {
		return true
	}
	rest = rest[size:]
	for rest != "" {
		r, size = utf8.DecodeRuneInString(rest)
		if !unicode.IsSpace(r) {
			break
		}
		rest = rest[size:]
	}
	if rest == "" {
		return true
	}
	return unicode.IsUpper(r) || unicode.IsDigit(r) || r == '"' || r == '\'' || r == '(' || r == '['
}

// Paragraphs splits text on blank lines (double newline). Segments are
// returned verbatim, including surrounding whitespace.
func Paragraphs(text string) []string {
	return strings.Split(text, "\n\n")
}

// ValidParagraphs filters Paragraphs down to segments whose trimmed content
// is longer than three characters. Short fragments such as stray headings or
// separators are not worth classifying.
func ValidParagraphs(text string) []string {
	var out []string
	for _, p := range Paragraphs(text) {
		if utf8.RuneCountInString(strings.TrimSpace(p)) > 3 {
			out = append(out, p)
		}
	}
	return out
}

// Measure computes readability metrics for the text. Averages floor their
// denominators at 1 so empty input yields zeros rather than NaN.
func Measure(text string) Metrics {
	words := Words(text)
	sentences := Sentences(text)

	m := Metrics{
		CharCount:     utf8.RuneCountInString(text),
		WordCount:     len(words),
		SentenceCount: len(sentences),
	}

	totalWordRunes := 0
	for _, w := range words {
		totalWordRunes += utf8.RuneCountInString(w)
	}
	m.AvgWordLength = float64(totalWordRunes) / float64(max(1, len(words)))

	totalSentenceWords := 0
	for _, s := range sentences {
		totalSentenceWords += CountWords(s.Text)
	}
	m.AvgSentenceLength = float64(totalSentenceWords) / float64(max(1, len(sentences)))

	return m
}

// Truncate returns the first n runes of s.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// Preview returns a display excerpt of s: the first n runes followed by an
// ellipsis when s is longer than n.
func Preview(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return Truncate(s, n) + "..."
}
