package config

import (
	"testing"

	"fraudscope/internal/llm"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadLLMConfigDefaults(t *testing.T) {
	resetViper(t)
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := LoadLLMConfig()
	if err != nil {
		t.Fatalf("LoadLLMConfig() error = %v", err)
	}
	if cfg.Provider != llm.ProviderOpenRouter {
		t.Errorf("Provider = %s, want openrouter", cfg.Provider)
	}
	if cfg.Model != "meta-llama/llama-3.1-8b-instruct" {
		t.Errorf("Model = %s", cfg.Model)
	}
	if cfg.BaseURL != llm.DefaultOpenRouterURL {
		t.Errorf("BaseURL = %s", cfg.BaseURL)
	}
	if cfg.Temperature != 0 {
		t.Errorf("Temperature = %v, want 0", cfg.Temperature)
	}
	if cfg.MaxTokens != 512 {
		t.Errorf("MaxTokens = %d, want 512", cfg.MaxTokens)
	}
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty without config or env", cfg.APIKey)
	}
}

func TestLoadLLMConfigInvalidProvider(t *testing.T) {
	resetViper(t)
	viper.Set("llm.provider", "crewai")

	if _, err := LoadLLMConfig(); err == nil {
		t.Fatal("LoadLLMConfig() expected error for unknown provider")
	}
}

func TestLoadLLMConfigOverrides(t *testing.T) {
	resetViper(t)
	viper.Set("llm.provider", "ollama")
	viper.Set("llm.model", "llama3.1:70b")
	viper.Set("llm.temperature", 0.3)
	viper.Set("llm.maxOutputTokens", 1024)

	cfg, err := LoadLLMConfig()
	if err != nil {
		t.Fatalf("LoadLLMConfig() error = %v", err)
	}
	if cfg.Provider != llm.ProviderOllama {
		t.Errorf("Provider = %s, want ollama", cfg.Provider)
	}
	if cfg.Model != "llama3.1:70b" {
		t.Errorf("Model = %s", cfg.Model)
	}
	if cfg.BaseURL != llm.DefaultOllamaURL {
		t.Errorf("BaseURL = %s, want ollama default", cfg.BaseURL)
	}
	if cfg.Temperature != 0.3 {
		t.Errorf("Temperature = %v, want 0.3", cfg.Temperature)
	}
	if cfg.MaxTokens != 1024 {
		t.Errorf("MaxTokens = %d, want 1024", cfg.MaxTokens)
	}
}

func TestResolveAPIKeyPrecedence(t *testing.T) {
	resetViper(t)
	t.Setenv("OPENROUTER_API_KEY", "sk-or-env")

	if got := ResolveAPIKey(llm.ProviderOpenRouter); got != "sk-or-env" {
		t.Errorf("env fallback: got %q", got)
	}

	viper.Set("llm.apiKey", "sk-or-generic")
	if got := ResolveAPIKey(llm.ProviderOpenRouter); got != "sk-or-generic" {
		t.Errorf("generic config key should beat env: got %q", got)
	}

	viper.Set("llm.apiKeys.openrouter", "sk-or-specific")
	if got := ResolveAPIKey(llm.ProviderOpenRouter); got != "sk-or-specific" {
		t.Errorf("per-provider key should win: got %q", got)
	}
}

func TestResolveAPIKeyGeminiFallsBackToGoogle(t *testing.T) {
	resetViper(t)
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "g-key")

	if got := ResolveAPIKey(llm.ProviderGemini); got != "g-key" {
		t.Errorf("ResolveAPIKey(gemini) = %q, want GOOGLE_API_KEY fallback", got)
	}
}
