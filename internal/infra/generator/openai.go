package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"textlens/internal/resilience/circuitbreaker"
	"textlens/internal/resilience/retry"
)

// OpenAIConfig holds configuration parameters for the OpenAI generator.
type OpenAIConfig struct {
	// Model is the OpenAI chat model identifier.
	Model string

	// Timeout is the maximum duration for a single generation call.
	Timeout time.Duration
}

// DefaultOpenAIConfig returns the standard generator settings.
func DefaultOpenAIConfig() OpenAIConfig {
	return OpenAIConfig{
		Model:   openai.GPT3Dot5Turbo,
		Timeout: 60 * time.Second,
	}
}

// OpenAI implements the Generator interface using OpenAI's chat API.
// It includes circuit breaker and retry logic for improved reliability.
type OpenAI struct {
	client         *openai.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	config         OpenAIConfig
}

// NewOpenAI creates a new OpenAI generator with the given API key.
func NewOpenAI(apiKey string, config OpenAIConfig) *OpenAI {
	slog.Info("Initialized OpenAI generator",
		slog.String("model", config.Model))

	return &OpenAI{
		client:         openai.NewClient(apiKey),
		circuitBreaker: circuitbreaker.New(circuitbreaker.GeneratorAPIConfig()),
		retryConfig:    retry.ModelAPIConfig(),
		config:         config,
	}
}

// Name implements Generator.
func (o *OpenAI) Name() string { return "openai" }

// Complete implements Generator.
func (o *OpenAI) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
			return o.doComplete(ctx, prompt, maxTokens)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("openai api circuit breaker open, request rejected",
					slog.String("service", o.circuitBreaker.Name()),
					slog.String("state", o.circuitBreaker.State().String()))
				return fmt.Errorf("openai api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(string)
		return nil
	})

	if retryErr != nil {
		return "", fmt.Errorf("openai completion failed after retries: %w", retryErr)
	}

	return result, nil
}

// doComplete performs the actual API call without retry or circuit breaker.
func (o *OpenAI) doComplete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.config.Model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: fmt.Sprintf(continuePrompt, prompt),
		}},
		MaxTokens: maxTokens,
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Completion failed",
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai api returned empty response")
	}

	slog.InfoContext(ctx, "Completion finished",
		slog.Duration("duration", duration))

	return resp.Choices[0].Message.Content, nil
}
