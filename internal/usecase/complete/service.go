// Package complete implements the text continuation use case.
package complete

import (
	"context"
	"fmt"

	"textlens/internal/infra/generator"
	"textlens/internal/stats"
)

// promptRunes is how many trailing runes of the input seed the generator.
const promptRunes = 100

// DefaultMaxLength is the generated-token budget when the request does not
// specify one.
const DefaultMaxLength = 50

// Result describes one completion.
type Result struct {
	Prompt        string `json:"prompt"`
	GeneratedText string `json:"generated_text"`
	FullText      string `json:"full_text"`
}

// Service provides the text completion use case.
type Service struct {
	Generator generator.Generator
	Stats     *stats.Store
}

// Complete continues text using the configured generator. Only the trailing
// portion of the input is used as the prompt. maxLength values below one
// fall back to DefaultMaxLength.
func (s *Service) Complete(ctx context.Context, text string, maxLength int) (*Result, error) {
	if maxLength < 1 {
		maxLength = DefaultMaxLength
	}

	prompt := lastRunes(text, promptRunes)

	generated, err := s.Generator.Complete(ctx, prompt, maxLength)
	if err != nil {
		return nil, fmt.Errorf("text completion: %w", err)
	}

	s.Stats.Record(0, 0, 1)

	return &Result{
		Prompt:        prompt,
		GeneratedText: generated,
		FullText:      prompt + generated,
	}, nil
}

// lastRunes returns the final n runes of s.
func lastRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
