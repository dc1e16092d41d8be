package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose  bool           `mapstructure:"verbose"`
	Config   string         `mapstructure:"config"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	LLM      LLMConfig      `mapstructure:"llm" validate:"omitempty"`
}

// DefaultsConfig holds the pre-filled form values.
type DefaultsConfig struct {
	CustomerName string `mapstructure:"customerName"`
	Industry     string `mapstructure:"industry"`
}

// LLMConfig holds configuration for LLM integration
type LLMConfig struct {
	Provider        string  `mapstructure:"provider" validate:"omitempty,oneof=openrouter openai ollama anthropic gemini"`
	Model           string  `mapstructure:"model" validate:"omitempty,min=1"`
	APIKey          string  `mapstructure:"apiKey" validate:"omitempty,min=1"`
	BaseURL         string  `mapstructure:"baseURL" validate:"omitempty,url"`
	MaxOutputTokens int     `mapstructure:"maxOutputTokens" validate:"omitempty,min=1"`
	Temperature     float64 `mapstructure:"temperature" validate:"omitempty,min=0,max=2"`
}
