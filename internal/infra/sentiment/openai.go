package sentiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"textlens/internal/resilience/circuitbreaker"
	"textlens/internal/resilience/retry"
)

// OpenAIConfig holds configuration for the OpenAI sentiment classifier.
type OpenAIConfig struct {
	// Model is the OpenAI chat model identifier.
	Model string

	// Timeout is the maximum duration for a single classification call.
	Timeout time.Duration
}

// DefaultOpenAIConfig returns the standard classifier settings.
func DefaultOpenAIConfig() OpenAIConfig {
	return OpenAIConfig{
		Model:   openai.GPT3Dot5Turbo,
		Timeout: 30 * time.Second,
	}
}

// OpenAI classifies sentiment through OpenAI's chat completion API.
// It includes circuit breaker and retry logic for improved reliability.
type OpenAI struct {
	client         *openai.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	config         OpenAIConfig
}

// NewOpenAI creates a new OpenAI sentiment analyzer with the given API key.
func NewOpenAI(apiKey string, config OpenAIConfig) *OpenAI {
	slog.Info("Initialized OpenAI sentiment analyzer",
		slog.String("model", config.Model))

	return &OpenAI{
		client:         openai.NewClient(apiKey),
		circuitBreaker: circuitbreaker.New(circuitbreaker.SentimentAPIConfig()),
		retryConfig:    retry.ModelAPIConfig(),
		config:         config,
	}
}

// Name implements Analyzer.
func (o *OpenAI) Name() string { return "openai" }

const classifyPrompt = "Classify the sentiment of the following text. " +
	"Answer with exactly one word: POSITIVE, NEGATIVE, or NEUTRAL.\n\n%s"

// Analyze implements Analyzer. It uses circuit breaker and retry logic
// around the API call.
func (o *OpenAI) Analyze(ctx context.Context, text string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	var result Result

	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
			return o.doAnalyze(ctx, text)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("sentiment api circuit breaker open, request rejected",
					slog.String("service", o.circuitBreaker.Name()),
					slog.String("state", o.circuitBreaker.State().String()))
				return fmt.Errorf("sentiment api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(Result)
		return nil
	})

	if retryErr != nil {
		return Result{}, fmt.Errorf("sentiment classification failed after retries: %w", retryErr)
	}

	return result, nil
}

// doAnalyze performs the actual API call without retry or circuit breaker.
func (o *OpenAI) doAnalyze(ctx context.Context, text string) (Result, error) {
	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.config.Model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: fmt.Sprintf(classifyPrompt, text),
		}},
		MaxTokens:   4,
		Temperature: 0,
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Sentiment classification failed",
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return Result{}, fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("openai api returned empty response")
	}

	result := parseLabel(resp.Choices[0].Message.Content)

	slog.InfoContext(ctx, "Sentiment classified",
		slog.String("label", result.Label),
		slog.Duration("duration", duration))

	return result, nil
}

// parseLabel maps the model's one-word answer to a Result. Unexpected
// answers fall back to neutral rather than failing the request.
func parseLabel(answer string) Result {
	switch strings.ToUpper(strings.TrimSpace(answer)) {
	case LabelPositive:
		return Result{Label: LabelPositive, Score: 0.9}
	case LabelNegative:
		return Result{Label: LabelNegative, Score: 0.9}
	default:
		return Neutral()
	}
}
