// Package config resolves runtime configuration into concrete settings.
package config

import (
	"fmt"
	"os"
	"strings"

	"fraudscope/internal/llm"

	"github.com/spf13/viper"
)

// LoadLLMConfig loads LLM configuration from Viper and Environment variables.
// It handles precedence: Explicit Viper Config > Environment Variables > Defaults.
// It does NOT verify the credential (that is the run's preflight gate).
func LoadLLMConfig() (llm.Config, error) {
	// 1. Provider
	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = llm.DefaultProvider
	}

	llmProvider, err := llm.ValidateProvider(provider)
	if err != nil {
		return llm.Config{}, fmt.Errorf("invalid provider: %w", err)
	}

	// 2. Model
	model := viper.GetString("llm.model")
	if model == "" {
		model = llm.DefaultModelForProvider(llmProvider)
	}

	// 3. API Key
	apiKey := ResolveAPIKey(llmProvider)

	// 4. Base URL (OpenRouter, Ollama, or custom OpenAI-compatible endpoint)
	baseURL := viper.GetString("llm.baseURL")
	if baseURL == "" {
		switch llmProvider {
		case llm.ProviderOpenRouter:
			baseURL = llm.DefaultOpenRouterURL
		case llm.ProviderOllama:
			baseURL = llm.DefaultOllamaURL
		}
	}

	// 5. Decoding parameters
	temperature := llm.DefaultTemperature
	if viper.IsSet("llm.temperature") {
		temperature = float32(viper.GetFloat64("llm.temperature"))
	}
	maxTokens := viper.GetInt("llm.maxOutputTokens")
	if maxTokens <= 0 {
		maxTokens = llm.DefaultMaxTokens
	}

	return llm.Config{
		Provider:    llmProvider,
		Model:       model,
		APIKey:      apiKey,
		BaseURL:     baseURL,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}, nil
}

// ResolveAPIKey returns the best API key for the given provider using
// per-provider config keys, then the generic config key, then
// provider-specific env vars.
func ResolveAPIKey(provider llm.Provider) string {
	keyFromViper := func(path string) string {
		if viper.IsSet(path) {
			return strings.TrimSpace(viper.GetString(path))
		}
		return ""
	}

	// 1) Per-provider config key (llm.apiKeys.<provider>)
	perProviderKey := keyFromViper(fmt.Sprintf("llm.apiKeys.%s", provider))
	if perProviderKey != "" {
		return perProviderKey
	}

	// 2) Generic config key
	genericKey := keyFromViper("llm.apiKey")
	if genericKey != "" {
		return genericKey
	}

	// 3) Provider-specific env vars
	return providerEnvKey(provider)
}

func providerEnvKey(provider llm.Provider) string {
	switch provider {
	case llm.ProviderOpenRouter:
		return strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY"))
	case llm.ProviderOpenAI:
		return strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	case llm.ProviderAnthropic:
		return strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	case llm.ProviderGemini:
		key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
		if key == "" {
			key = strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
		}
		return key
	default:
		return ""
	}
}
