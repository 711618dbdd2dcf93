// Package generator provides text continuation backends for the completion
// endpoint. Adapters exist for Claude (Anthropic) and OpenAI APIs with
// reliability patterns, plus a noop fallback used when no API key is
// configured.
package generator

import "context"

// Generator produces a continuation for a text prompt.
type Generator interface {
	// Complete returns generated text that continues prompt. maxTokens
	// bounds the length of the generated suffix. The returned string does
	// not include the prompt itself.
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)

	// Name identifies the backend for logging and health reporting.
	Name() string
}
