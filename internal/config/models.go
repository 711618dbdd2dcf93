// Package config loads the model backend configuration. The file selects
// which provider serves each component; API keys and tuning stay in
// environment variables.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ModelsConfig selects the backend provider for each pluggable component.
type ModelsConfig struct {
	Grammar   GrammarConfig   `yaml:"grammar"`
	Sentiment SentimentConfig `yaml:"sentiment"`
	Generator GeneratorConfig `yaml:"generator"`
}

// GrammarConfig configures the grammar checking backend.
type GrammarConfig struct {
	// Provider is "builtin" or "languagetool".
	Provider string `yaml:"provider"`
	// Endpoint is the LanguageTool base URL, required for that provider.
	Endpoint string `yaml:"endpoint"`
}

// SentimentConfig configures the sentiment classification backend.
type SentimentConfig struct {
	// Provider is "lexicon" or "openai".
	Provider string `yaml:"provider"`
	// Model overrides the default chat model for the openai provider.
	Model string `yaml:"model"`
}

// GeneratorConfig configures the text completion backend.
type GeneratorConfig struct {
	// Provider is "none", "claude", or "openai".
	Provider string `yaml:"provider"`
	// Model overrides the default model for the chosen provider.
	Model string `yaml:"model"`
}

// DefaultModels returns the configuration used when no file is given:
// every component runs on its dependency-free backend.
func DefaultModels() ModelsConfig {
	return ModelsConfig{
		Grammar:   GrammarConfig{Provider: "builtin"},
		Sentiment: SentimentConfig{Provider: "lexicon"},
		Generator: GeneratorConfig{Provider: "none"},
	}
}

// LoadModels reads the models file at path. An empty path returns the
// defaults. Unset providers fall back to their defaults; unknown providers
// are an error.
func LoadModels(path string) (ModelsConfig, error) {
	cfg := DefaultModels()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ModelsConfig{}, fmt.Errorf("read models config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ModelsConfig{}, fmt.Errorf("parse models config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.validate(); err != nil {
		return ModelsConfig{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *ModelsConfig) {
	if cfg.Grammar.Provider == "" {
		cfg.Grammar.Provider = "builtin"
	}
	if cfg.Sentiment.Provider == "" {
		cfg.Sentiment.Provider = "lexicon"
	}
	if cfg.Generator.Provider == "" {
		cfg.Generator.Provider = "none"
	}
}

func (c ModelsConfig) validate() error {
	switch c.Grammar.Provider {
	case "builtin":
	case "languagetool":
		if c.Grammar.Endpoint == "" {
			return fmt.Errorf("grammar provider languagetool requires an endpoint")
		}
	default:
		return fmt.Errorf("invalid grammar provider %q", c.Grammar.Provider)
	}

	switch c.Sentiment.Provider {
	case "lexicon", "openai":
	default:
		return fmt.Errorf("invalid sentiment provider %q", c.Sentiment.Provider)
	}

	switch c.Generator.Provider {
	case "none", "claude", "openai":
	default:
		return fmt.Errorf("invalid generator provider %q", c.Generator.Provider)
	}

	return nil
}
