package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"textlens/internal/analysis/tokenize"
	"textlens/internal/resilience/circuitbreaker"
	"textlens/internal/resilience/retry"
)

// ClaudeConfig holds configuration parameters for the Claude generator.
type ClaudeConfig struct {
	// Model is the Claude API model identifier.
	Model string

	// Timeout is the maximum duration for a single generation call.
	Timeout time.Duration
}

// DefaultClaudeConfig returns the standard generator settings.
func DefaultClaudeConfig() ClaudeConfig {
	return ClaudeConfig{
		Model:   string(anthropic.ModelClaudeSonnet4_5_20250929),
		Timeout: 60 * time.Second,
	}
}

// Claude implements the Generator interface using Anthropic's Claude API.
// It includes circuit breaker and retry logic for improved reliability.
type Claude struct {
	client         anthropic.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	config         ClaudeConfig
}

// NewClaude creates a new Claude generator with the given API key.
func NewClaude(apiKey string, config ClaudeConfig) *Claude {
	slog.Info("Initialized Claude generator",
		slog.String("model", config.Model))

	return &Claude{
		client:         anthropic.NewClient(option.WithAPIKey(apiKey)),
		circuitBreaker: circuitbreaker.New(circuitbreaker.GeneratorAPIConfig()),
		retryConfig:    retry.ModelAPIConfig(),
		config:         config,
	}
}

// Name implements Generator.
func (c *Claude) Name() string { return "claude" }

const continuePrompt = "Continue the following text naturally. " +
	"Reply with only the continuation, without repeating the text:\n\n%s"

// Complete implements Generator. It uses circuit breaker and retry logic
// around the API call.
func (c *Claude) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doComplete(ctx, prompt, maxTokens)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("claude api circuit breaker open, request rejected",
					slog.String("service", c.circuitBreaker.Name()),
					slog.String("state", c.circuitBreaker.State().String()))
				return fmt.Errorf("claude api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(string)
		return nil
	})

	if retryErr != nil {
		return "", fmt.Errorf("claude completion failed after retries: %w", retryErr)
	}

	return result, nil
}

// doComplete performs the actual API call without retry or circuit breaker.
func (c *Claude) doComplete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	requestID := uuid.New().String()

	slog.InfoContext(ctx, "Starting completion",
		slog.String("request_id", requestID),
		slog.Int("prompt_length", len([]rune(prompt))),
		slog.Int("max_tokens", maxTokens))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(fmt.Sprintf(continuePrompt, prompt)),
			),
		},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Completion failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		slog.ErrorContext(ctx, "Claude API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("claude api returned empty response")
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		slog.ErrorContext(ctx, "Claude API returned unexpected response type",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("claude api returned unexpected response type")
	}

	generated := textBlock.Text

	slog.InfoContext(ctx, "Completion finished",
		slog.String("request_id", requestID),
		slog.String("preview", tokenize.Preview(generated, 80)),
		slog.Duration("duration", duration))

	return generated, nil
}
