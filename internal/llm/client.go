// Package llm provides a unified interface for LLM providers using CloudWeGo Eino.
package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// Provider identifies the LLM provider to use.
type Provider string

// ErrMissingAPIKey is returned before any request leaves the process when
// the configured provider needs a credential and none was found.
var ErrMissingAPIKey = errors.New("missing API key")

// Config holds configuration for creating an LLM client.
type Config struct {
	Provider    Provider
	Model       string
	APIKey      string  // Required for all providers except Ollama
	BaseURL     string  // Required for Ollama (default: http://localhost:11434)
	Temperature float32 // Sampling temperature, 0 for deterministic output
	MaxTokens   int     // Upper bound on reply length
}

// NewChatModel creates a ChatModel instance based on the provider configuration.
// It returns an Eino BaseChatModel that can be used for Generate() calls.
func NewChatModel(ctx context.Context, cfg Config) (model.BaseChatModel, error) {
	if err := CheckCredential(cfg); err != nil {
		return nil, err
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	temperature := cfg.Temperature

	switch cfg.Provider {
	case ProviderOpenRouter:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DefaultOpenRouterURL
		}
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL:     baseURL,
			Model:       cfg.Model,
			APIKey:      cfg.APIKey,
			Temperature: &temperature,
			MaxTokens:   &maxTokens,
		})

	case ProviderOpenAI:
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			APIKey:      cfg.APIKey,
			Temperature: &temperature,
			MaxTokens:   &maxTokens,
		})

	case ProviderOllama:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DefaultOllamaURL
		}
		return ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
			BaseURL: baseURL,
			Model:   cfg.Model,
		})

	case ProviderAnthropic:
		return claude.NewChatModel(ctx, &claude.Config{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			MaxTokens:   maxTokens,
			Temperature: &temperature,
		})

	case ProviderGemini:
		// Gemini extension relies on environment variables
		_ = os.Setenv("GOOGLE_API_KEY", cfg.APIKey)
		_ = os.Setenv("GEMINI_API_KEY", cfg.APIKey)

		return gemini.NewChatModel(ctx, &gemini.Config{
			Model: cfg.Model,
		})

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: openrouter, openai, ollama, anthropic, gemini)", cfg.Provider)
	}
}

// ValidateProvider checks if the given provider string is supported.
func ValidateProvider(p string) (Provider, error) {
	switch Provider(p) {
	case ProviderOpenRouter:
		return ProviderOpenRouter, nil
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	case ProviderOllama:
		return ProviderOllama, nil
	case ProviderAnthropic:
		return ProviderAnthropic, nil
	case ProviderGemini:
		return ProviderGemini, nil
	default:
		return "", fmt.Errorf("unsupported provider: %s", p)
	}
}

// RequiresAPIKey reports whether the provider needs a credential.
// Ollama runs locally and is the only exception.
func RequiresAPIKey(p Provider) bool {
	return p != ProviderOllama
}

// CheckCredential verifies that the config carries a credential when the
// provider needs one. Every run passes this gate before a request can be
// built, so a missing key never produces an outbound call.
func CheckCredential(cfg Config) error {
	if RequiresAPIKey(cfg.Provider) && cfg.APIKey == "" {
		return fmt.Errorf("%w for provider %s", ErrMissingAPIKey, cfg.Provider)
	}
	return nil
}
