package grammar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sony/gobreaker"

	"textlens/internal/infra/throttle"
	"textlens/internal/resilience/circuitbreaker"
	"textlens/internal/resilience/retry"
)

// LanguageToolConfig holds configuration for the LanguageTool client.
type LanguageToolConfig struct {
	// Endpoint is the base URL of a LanguageTool-compatible server,
	// e.g. "https://api.languagetool.org".
	Endpoint string

	// Language is the check language code. Default: "en-US".
	Language string

	// Timeout is the per-request timeout.
	Timeout time.Duration

	// RequestsPerSecond throttles outbound calls. The public API refuses
	// clients that exceed ~20 requests per minute.
	RequestsPerSecond float64
}

// DefaultLanguageToolConfig returns sensible defaults for the public API.
func DefaultLanguageToolConfig(endpoint string) LanguageToolConfig {
	return LanguageToolConfig{
		Endpoint:          endpoint,
		Language:          "en-US",
		Timeout:           15 * time.Second,
		RequestsPerSecond: 0.3,
	}
}

// LanguageTool checks grammar against a LanguageTool HTTP API. Calls go
// through an outbound rate limiter, retry with backoff, and a circuit
// breaker.
type LanguageTool struct {
	cfg            LanguageToolConfig
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	limiter        *throttle.Limiter
}

// NewLanguageTool creates a LanguageTool checker for the configured endpoint.
func NewLanguageTool(cfg LanguageToolConfig) *LanguageTool {
	if cfg.Language == "" {
		cfg.Language = "en-US"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 0.3
	}

	slog.Info("initialized LanguageTool grammar checker",
		slog.String("endpoint", cfg.Endpoint),
		slog.String("language", cfg.Language))

	return &LanguageTool{
		cfg:            cfg,
		client:         &http.Client{Timeout: cfg.Timeout},
		circuitBreaker: circuitbreaker.New(circuitbreaker.GrammarAPIConfig()),
		retryConfig:    retry.GrammarAPIConfig(),
		limiter:        throttle.New(cfg.RequestsPerSecond, 3),
	}
}

// Name implements Checker.
func (lt *LanguageTool) Name() string { return "languagetool" }

// ltResponse mirrors the subset of the LanguageTool /v2/check response the
// service consumes.
type ltResponse struct {
	Matches []struct {
		Message      string `json:"message"`
		Offset       int    `json:"offset"`
		Length       int    `json:"length"`
		Replacements []struct {
			Value string `json:"value"`
		} `json:"replacements"`
		Rule struct {
			ID        string `json:"id"`
			IssueType string `json:"issueType"`
		} `json:"rule"`
	} `json:"matches"`
}

// Check implements Checker. It posts the text to /v2/check and maps the
// response matches.
func (lt *LanguageTool) Check(ctx context.Context, text string) ([]Match, error) {
	if err := lt.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("grammar api throttle: %w", err)
	}

	var matches []Match
	retryErr := retry.WithBackoff(ctx, lt.retryConfig, func() error {
		result, err := lt.circuitBreaker.Execute(func() (interface{}, error) {
			return lt.doCheck(ctx, text)
		})
		if err != nil {
			if err == gobreaker.ErrOpenState {
				slog.Warn("grammar api circuit breaker open, request rejected",
					slog.String("state", lt.circuitBreaker.State().String()))
				return fmt.Errorf("grammar api unavailable: circuit breaker open")
			}
			return err
		}
		matches = result.([]Match)
		return nil
	})
	if retryErr != nil {
		return nil, fmt.Errorf("grammar check failed after retries: %w", retryErr)
	}
	return matches, nil
}

func (lt *LanguageTool) doCheck(ctx context.Context, text string) ([]Match, error) {
	form := url.Values{}
	form.Set("language", lt.cfg.Language)
	form.Set("text", text)

	endpoint := strings.TrimRight(lt.cfg.Endpoint, "/") + "/v2/check"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build grammar request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := lt.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("grammar api request: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("failed to close grammar api response body", slog.Any("error", cerr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &retry.HTTPError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var parsed ltResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode grammar response: %w", err)
	}

	matches := make([]Match, 0, len(parsed.Matches))
	for _, m := range parsed.Matches {
		replacements := make([]string, 0, len(m.Replacements))
		for _, r := range m.Replacements {
			replacements = append(replacements, r.Value)
		}
		issueType := m.Rule.IssueType
		if issueType == "" {
			issueType = "uncategorized"
		}
		matches = append(matches, Match{
			Offset:        clampOffset(m.Offset, text),
			Length:        m.Length,
			Replacements:  replacements,
			RuleIssueType: issueType,
			Message:       m.Message,
		})
	}

	slog.Debug("grammar check completed",
		slog.Int("matches", len(matches)),
		slog.Duration("duration", time.Since(start)))

	return matches, nil
}

// clampOffset keeps an offset inside the text's rune length; the API should
// never exceed it, but a malformed response must not cause a slice panic
// downstream.
func clampOffset(offset int, text string) int {
	if offset < 0 {
		return 0
	}
	if n := utf8.RuneCountInString(text); offset > n {
		return n
	}
	return offset
}
