package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"fraudscope/internal/agent"
	"fraudscope/internal/config"
	"fraudscope/internal/llm"
	"fraudscope/internal/logger"
	"fraudscope/internal/ui"
	"fraudscope/models"
)

var analyzeCmd = &cobra.Command{
	Use:           "analyze",
	Short:         "Run a fraud risk analysis for one customer",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Run one analysis cycle: collect the customer details, send a single
prompt to the configured LLM, and render the validated risk assessment.

By default an interactive form is shown, pre-filled with the configured
defaults. Pass --name and --industry to skip the form.

Examples:
  fraudscope analyze
  fraudscope analyze --name "Acme Payments Ltd" --industry "Payment Processing"
  fraudscope analyze -n "Acme" --industry "Fintech" -d "Series B, 12 countries"`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringP("name", "n", "", "Customer name (with --industry, skips the form)")
	analyzeCmd.Flags().StringP("industry", "i", "", "Industry domain")
	analyzeCmd.Flags().StringP("description", "d", "", "Optional free-text description of the customer")
	analyzeCmd.Flags().Bool("no-input", false, "Never show the form; use flags and configured defaults")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger.SetCommand("analyze")

	llmCfg, err := config.LoadLLMConfig()
	if err != nil {
		ui.RenderError(os.Stderr, err)
		return err
	}

	// Credential gate: a missing key blocks the run before the form is
	// even shown, so no request can ever leave the process without one.
	if err := llm.CheckCredential(llmCfg); err != nil {
		ui.RenderError(os.Stderr, err)
		return err
	}

	req, cancelled, err := collectRequest(cmd)
	if err != nil {
		ui.RenderError(os.Stderr, err)
		return err
	}
	if cancelled {
		return nil
	}

	logger.SetLastRun(req.CustomerName, req.Industry)

	spinner := ui.NewSpinner("Analyzing fraud risk for " + req.CustomerName + "...")
	spinner.Start()

	analyst, err := agent.NewAnalyst(cmd.Context(), llmCfg)
	if err != nil {
		spinner.Stop()
		ui.RenderError(os.Stderr, err)
		return err
	}

	assessment, err := analyst.Assess(cmd.Context(), req)
	spinner.Stop()
	if err != nil {
		ui.RenderError(os.Stderr, err)
		return err
	}

	ui.RenderAssessment(os.Stdout, req, assessment)
	return nil
}

// collectRequest builds the analysis request from flags, or from the
// interactive form when no identifying flags were given.
func collectRequest(cmd *cobra.Command) (models.AnalysisRequest, bool, error) {
	appCfg := GetConfig()

	name, _ := cmd.Flags().GetString("name")
	industry, _ := cmd.Flags().GetString("industry")
	description, _ := cmd.Flags().GetString("description")
	noInput, _ := cmd.Flags().GetBool("no-input")

	defaults := models.AnalysisRequest{
		CustomerName: appCfg.Defaults.CustomerName,
		Industry:     appCfg.Defaults.Industry,
	}

	scripted := noInput || cmd.Flags().Changed("name") || cmd.Flags().Changed("industry")
	if scripted {
		req := defaults
		if cmd.Flags().Changed("name") {
			req.CustomerName = name
		}
		if cmd.Flags().Changed("industry") {
			req.Industry = industry
		}
		req.Description = description
		return req, false, nil
	}

	defaults.Description = description
	return ui.PromptAnalysisRequest(defaults)
}
