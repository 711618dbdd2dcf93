package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"textlens/internal/config"
	"textlens/internal/infra/generator"
	"textlens/internal/infra/grammar"
	"textlens/internal/infra/sentiment"
	"textlens/internal/observability/logging"
	"textlens/internal/stats"
	pkgcfg "textlens/pkg/config"

	analyzeUC "textlens/internal/usecase/analyze"
	completeUC "textlens/internal/usecase/complete"
	grammarUC "textlens/internal/usecase/grammar"
	suggestUC "textlens/internal/usecase/suggest"

	hhttp "textlens/internal/handler/http"
	"textlens/internal/handler/http/middleware"
	"textlens/internal/handler/http/requestid"
	"textlens/internal/handler/http/textapi"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	models, err := config.LoadModels(os.Getenv("MODELS_CONFIG"))
	if err != nil {
		logger.Error("failed to load models configuration", slog.Any("error", err))
		os.Exit(1)
	}

	backends, err := buildBackends(models)
	if err != nil {
		logger.Error("failed to build backends", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("backends initialized",
		slog.String("grammar", backends.checker.Name()),
		slog.String("sentiment", backends.analyzer.Name()),
		slog.String("generator", backends.generator.Name()))

	version := getVersion()
	handler := setupServer(logger, backends, version)

	runServer(logger, handler, version)
}

// backends holds the pluggable providers selected by the models configuration.
type backends struct {
	checker   grammar.Checker
	analyzer  sentiment.Analyzer
	generator generator.Generator
}

// buildBackends constructs the provider implementations named in the models
// configuration. API-backed providers fail here when their key is missing,
// so a misconfigured process never starts half-working.
func buildBackends(models config.ModelsConfig) (*backends, error) {
	checker, err := buildChecker(models.Grammar)
	if err != nil {
		return nil, err
	}
	analyzer, err := buildAnalyzer(models.Sentiment)
	if err != nil {
		return nil, err
	}
	gen, err := buildGenerator(models.Generator)
	if err != nil {
		return nil, err
	}
	return &backends{checker: checker, analyzer: analyzer, generator: gen}, nil
}

func buildChecker(cfg config.GrammarConfig) (grammar.Checker, error) {
	switch cfg.Provider {
	case "builtin":
		return grammar.NewBuiltin(), nil
	case "languagetool":
		return grammar.NewLanguageTool(grammar.DefaultLanguageToolConfig(cfg.Endpoint)), nil
	default:
		return nil, fmt.Errorf("unknown grammar provider %q", cfg.Provider)
	}
}

func buildAnalyzer(cfg config.SentimentConfig) (sentiment.Analyzer, error) {
	switch cfg.Provider {
	case "lexicon":
		return sentiment.NewLexicon(), nil
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, errors.New("OPENAI_API_KEY must be set for the openai sentiment provider")
		}
		c := sentiment.DefaultOpenAIConfig()
		if cfg.Model != "" {
			c.Model = cfg.Model
		}
		return sentiment.NewOpenAI(apiKey, c), nil
	default:
		return nil, fmt.Errorf("unknown sentiment provider %q", cfg.Provider)
	}
}

func buildGenerator(cfg config.GeneratorConfig) (generator.Generator, error) {
	switch cfg.Provider {
	case "none":
		return generator.NewNoop(), nil
	case "claude":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, errors.New("ANTHROPIC_API_KEY must be set for the claude generator provider")
		}
		c := generator.DefaultClaudeConfig()
		if cfg.Model != "" {
			c.Model = cfg.Model
		}
		return generator.NewClaude(apiKey, c), nil
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, errors.New("OPENAI_API_KEY must be set for the openai generator provider")
		}
		c := generator.DefaultOpenAIConfig()
		if cfg.Model != "" {
			c.Model = cfg.Model
		}
		return generator.NewOpenAI(apiKey, c), nil
	default:
		return nil, fmt.Errorf("unknown generator provider %q", cfg.Provider)
	}
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires the use case services, routes, and middleware chain.
func setupServer(logger *slog.Logger, b *backends, version string) http.Handler {
	store := stats.NewStore()

	svcs := textapi.Services{
		Grammar:  &grammarUC.Service{Checker: b.checker, Stats: store},
		Analyze:  &analyzeUC.Service{Analyzer: b.analyzer, Stats: store},
		Suggest:  &suggestUC.Service{Stats: store},
		Complete: &completeUC.Service{Generator: b.generator, Stats: store},
		Stats:    store,
	}

	mux := http.NewServeMux()
	textapi.Register(mux, svcs)
	mux.Handle("GET  /health", &hhttp.HealthHandler{
		Version:   version,
		Grammar:   b.checker,
		Sentiment: b.analyzer,
		Generator: b.generator,
	})
	mux.Handle("GET  /metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: CORS, Request ID, Rate Limit, Recovery, Logging, Body Limit, Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	corsConfig := middleware.LoadCORSConfig()
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.AllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Int("max_age", corsConfig.MaxAge))

	rateLimit := pkgcfg.GetEnvInt("RATE_LIMIT", 60)
	rateWindow := pkgcfg.GetEnvDuration("RATE_LIMIT_WINDOW", time.Minute)
	limiter := hhttp.NewRateLimiter(rateLimit, rateWindow)
	logger.Info("rate limiting initialized",
		slog.Int("limit", rateLimit),
		slog.Duration("window", rateWindow))

	// Apply in reverse order (innermost to outermost).
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = limiter.Limit(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(corsConfig)(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := ":" + pkgcfg.GetEnvString("PORT", "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
