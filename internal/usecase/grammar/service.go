// Package grammar implements the grammar checking use case. It delegates
// match detection to a configured checker backend and shapes the matches
// into API-facing issues with surrounding context.
package grammar

import (
	"context"
	"fmt"

	"textlens/internal/analysis/tokenize"
	"textlens/internal/infra/grammar"
	"textlens/internal/stats"
)

// contextRunes is how many runes of surrounding text accompany each issue.
const contextRunes = 20

// maxSuggestions caps the replacement list per issue.
const maxSuggestions = 3

// Issue is a single grammar problem found in the text.
type Issue struct {
	Error       string   `json:"error"`
	Context     string   `json:"context"`
	Suggestions []string `json:"suggestions"`
	Rule        string   `json:"rule"`
	Offset      int      `json:"offset"`
	Length      int      `json:"length"`
}

// Result is the outcome of a grammar check.
type Result struct {
	Issues      []Issue
	TotalIssues int
}

// Service provides the grammar checking use case.
type Service struct {
	Checker grammar.Checker
	Stats   *stats.Store
}

// Check runs the configured checker over text and returns the issues found.
// Words are counted against usage statistics even when the backend fails.
func (s *Service) Check(ctx context.Context, text string) (*Result, error) {
	words := tokenize.CountWords(text)
	s.Stats.Record(int64(words), 0, 0)

	matches, err := s.Checker.Check(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("grammar check: %w", err)
	}

	runes := []rune(text)
	issues := make([]Issue, 0, len(matches))
	for _, m := range matches {
		issues = append(issues, buildIssue(runes, m))
	}

	s.Stats.Record(0, int64(len(issues)), 0)

	return &Result{Issues: issues, TotalIssues: len(issues)}, nil
}

// buildIssue extracts the offending text and its surrounding context from
// the original input. Offsets from the checker are rune positions; they are
// clamped so a misbehaving backend cannot cause a slice panic.
func buildIssue(runes []rune, m grammar.Match) Issue {
	start := clamp(m.Offset, 0, len(runes))
	end := clamp(m.Offset+m.Length, start, len(runes))
	ctxStart := clamp(start-contextRunes, 0, len(runes))
	ctxEnd := clamp(end+contextRunes, 0, len(runes))

	suggestions := m.Replacements
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	if len(suggestions) == 0 {
		suggestions = []string{"No suggestions"}
	}

	return Issue{
		Error:       string(runes[start:end]),
		Context:     string(runes[ctxStart:ctxEnd]),
		Suggestions: suggestions,
		Rule:        m.RuleIssueType,
		Offset:      m.Offset,
		Length:      m.Length,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
