package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fraudscope/internal/config"
	"fraudscope/internal/llm"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect fraudscope configuration",
}

var configShowCmd = &cobra.Command{
	Use:          "show",
	Short:        "Show the resolved configuration",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		llmCfg, err := config.LoadLLMConfig()
		if err != nil {
			return err
		}
		appCfg := GetConfig()

		out := cmd.OutOrStdout()
		if viper.ConfigFileUsed() != "" {
			fmt.Fprintf(out, "config file:       %s\n", viper.ConfigFileUsed())
		}
		fmt.Fprintf(out, "provider:          %s\n", llmCfg.Provider)
		fmt.Fprintf(out, "model:             %s\n", llmCfg.Model)
		fmt.Fprintf(out, "base URL:          %s\n", llmCfg.BaseURL)
		fmt.Fprintf(out, "temperature:       %g\n", llmCfg.Temperature)
		fmt.Fprintf(out, "max output tokens: %d\n", llmCfg.MaxTokens)
		fmt.Fprintf(out, "api key:           %s\n", redactKey(llmCfg.APIKey, llmCfg.Provider))
		fmt.Fprintf(out, "default customer:  %s\n", appCfg.Defaults.CustomerName)
		fmt.Fprintf(out, "default industry:  %s\n", appCfg.Defaults.Industry)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}

// redactKey never prints the credential, only whether one is set.
func redactKey(key string, provider llm.Provider) string {
	if key != "" {
		return "(set)"
	}
	if !llm.RequiresAPIKey(provider) {
		return "(not required)"
	}
	return "(not set)"
}
