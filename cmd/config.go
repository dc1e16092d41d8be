package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fraudscope/types"
)

const (
	configName = ".fraudscope"
	envPrefix  = "FRAUDSCOPE"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single validator instance, it caches struct info
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(config *types.AppConfig) error {
	return validate.Struct(config)
}

// GetConfig returns the resolved application configuration.
func GetConfig() types.AppConfig {
	return GlobalAppConfig
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env file first if present; it's fine if none exists.
	_ = godotenv.Load()

	// Environment variable handling must be set up BEFORE reading the
	// config file so that env vars can influence config loading.
	viper.SetEnvPrefix(envPrefix) // e.g., FRAUDSCOPE_VERBOSE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfgFileFlag := viper.GetString("config") // Value from --config flag

	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)       // $HOME/.fraudscope.yaml
		viper.AddConfigPath(".")        // ./.fraudscope.yaml
		viper.SetConfigName(configName)
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFileFlag != "" {
				fmt.Fprintln(os.Stderr, "Error: Specified config file not found:", cfgFileFlag)
			} else if viper.GetBool("verbose") {
				fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
			}
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	SetConfigDefaults()

	// After all sources are configured, unmarshal into GlobalAppConfig
	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %s\n", err)
		os.Exit(1)
	}

	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		os.Exit(1)
	}
}

// SetConfigDefaults registers every default value with Viper.
func SetConfigDefaults() {
	// Form defaults
	viper.SetDefault("defaults.customerName", "TechCorp Solutions")
	viper.SetDefault("defaults.industry", "AI Software Company")

	// Defaults for LLMConfig
	viper.SetDefault("llm.provider", "openrouter")
	viper.SetDefault("llm.model", "meta-llama/llama-3.1-8b-instruct")
	viper.SetDefault("llm.temperature", 0.0)
	viper.SetDefault("llm.maxOutputTokens", 512)
}
