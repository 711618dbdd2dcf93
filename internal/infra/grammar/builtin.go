package grammar

import (
	"context"
	"strings"
	"unicode"

	"textlens/internal/analysis/tokenize"
)

// commonMisspellings maps frequent typos to their corrections. Lookup is
// case-insensitive; the replacement preserves the original capitalization.
var commonMisspellings = map[string]string{
	"teh":        "the",
	"recieve":    "receive",
	"seperate":   "separate",
	"definately": "definitely",
	"occured":    "occurred",
	"wich":       "which",
	"becuase":    "because",
	"untill":     "until",
	"adress":     "address",
	"alot":       "a lot",
	"thier":      "their",
	"truely":     "truly",
}

// Builtin is a dependency-free rule-based checker used when no external
// grammar service is configured. It catches common misspellings, doubled
// words, and sentences starting with a lowercase letter. It is deliberately
// modest; a LanguageTool endpoint gives far better coverage.
type Builtin struct{}

// NewBuiltin creates the rule-based checker.
func NewBuiltin() *Builtin {
	return &Builtin{}
}

// Name implements Checker.
func (b *Builtin) Name() string { return "builtin" }

// Check implements Checker. It never fails.
func (b *Builtin) Check(_ context.Context, text string) ([]Match, error) {
	matches := []Match{}

	matches = append(matches, b.scanMisspellings(text)...)
	matches = append(matches, b.scanDoubledWords(text)...)
	matches = append(matches, b.scanSentenceCase(text)...)

	return matches, nil
}

// runeOffset converts a byte offset into a rune offset.
func runeOffset(text string, byteOff int) int {
	off := 0
	for i := range text {
		if i >= byteOff {
			break
		}
		off++
	}
	return off
}

func (b *Builtin) scanMisspellings(text string) []Match {
	var out []Match
	for _, span := range tokenize.WordSpans(text) {
		word := text[span[0]:span[1]]
		correction, ok := commonMisspellings[strings.ToLower(word)]
		if !ok {
			continue
		}
		out = append(out, Match{
			Offset:        runeOffset(text, span[0]),
			Length:        len([]rune(word)),
			Replacements:  []string{matchCase(correction, word)},
			RuleIssueType: "misspelling",
			Message:       "Possible spelling mistake found.",
		})
	}
	return out
}

func (b *Builtin) scanDoubledWords(text string) []Match {
	spans := tokenize.WordSpans(text)
	var out []Match
	for i := 1; i < len(spans); i++ {
		prev := text[spans[i-1][0]:spans[i-1][1]]
		cur := text[spans[i][0]:spans[i][1]]
		if !strings.EqualFold(prev, cur) {
			continue
		}
		if strings.TrimSpace(text[spans[i-1][1]:spans[i][0]]) != "" {
			continue
		}
		start := runeOffset(text, spans[i-1][0])
		end := runeOffset(text, spans[i][1])
		out = append(out, Match{
			Offset:        start,
			Length:        end - start,
			Replacements:  []string{prev},
			RuleIssueType: "duplication",
			Message:       "Possible typo: you repeated a word.",
		})
	}
	return out
}

// scanSentenceCase flags letters that open a sentence in lowercase. The
// sentence splitter treats a lowercase continuation after a terminator as
// part of the same sentence, so this rule looks at the raw text instead.
func (b *Builtin) scanSentenceCase(text string) []Match {
	var out []Match
	expectStart := true
	for i, r := range text {
		if unicode.IsSpace(r) || isOpener(r) {
			continue
		}
		if expectStart && unicode.IsLower(r) {
			out = append(out, Match{
				Offset:        runeOffset(text, i),
				Length:        1,
				Replacements:  []string{string(unicode.ToUpper(r))},
				RuleIssueType: "typographical",
				Message:       "This sentence does not start with an uppercase letter.",
			})
		}
		expectStart = r == '.' || r == '!' || r == '?'
	}
	return out
}

func isOpener(r rune) bool {
	switch r {
	case '"', '\'', '(', '[', '{':
		return true
	}
	return false
}

// firstLetter returns the first letter rune of s, skipping quotes and
// brackets, or 0 when s starts with a digit or has no letters.
func firstLetter(s string) (rune, int) {
	for i, r := range s {
		if unicode.IsLetter(r) {
			return r, i
		}
		if unicode.IsDigit(r) {
			return 0, i
		}
	}
	return 0, -1
}

// matchCase applies the capitalization of the original token to the
// correction: "Teh" becomes "The", "TEH" becomes "THE".
func matchCase(correction, original string) string {
	if original == strings.ToUpper(original) && len(original) > 1 {
		return strings.ToUpper(correction)
	}
	first, _ := firstLetter(original)
	if first != 0 && unicode.IsUpper(first) {
		r := []rune(correction)
		r[0] = unicode.ToUpper(r[0])
		return string(r)
	}
	return correction
}
