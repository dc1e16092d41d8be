package llm

// Provider constants
const (
	// DefaultProvider is the default LLM provider
	DefaultProvider = ProviderOpenRouter

	// ProviderOpenRouter represents the OpenRouter OpenAI-compatible gateway
	ProviderOpenRouter = "openrouter"

	// ProviderOpenAI represents the OpenAI provider
	ProviderOpenAI = "openai"

	// ProviderOllama represents the Ollama provider
	ProviderOllama = "ollama"

	// ProviderAnthropic represents the Anthropic provider
	ProviderAnthropic = "anthropic"

	// ProviderGemini represents the Google Gemini provider
	ProviderGemini = "gemini"
)

// DefaultOpenRouterURL is the chat-completions endpoint for OpenRouter
const DefaultOpenRouterURL = "https://openrouter.ai/api/v1"

// DefaultOllamaURL is the default URL for Ollama server
const DefaultOllamaURL = "http://localhost:11434"

// Decoding defaults for the analysis call. Temperature 0 keeps repeated
// runs over the same input deterministic; 512 tokens is plenty for a
// score, a summary, and three factors.
const (
	// DefaultModel is the model served through OpenRouter
	DefaultModel = "meta-llama/llama-3.1-8b-instruct"

	// DefaultTemperature pins the sampling temperature
	DefaultTemperature float32 = 0

	// DefaultMaxTokens bounds the reply length
	DefaultMaxTokens = 512
)

// DefaultModelForProvider returns the default model ID for a given provider.
func DefaultModelForProvider(provider Provider) string {
	switch provider {
	case ProviderOpenRouter:
		return DefaultModel
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderOllama:
		return "llama3.1"
	case ProviderAnthropic:
		return "claude-3-5-haiku-latest"
	case ProviderGemini:
		return "gemini-2.0-flash"
	default:
		return DefaultModel
	}
}
