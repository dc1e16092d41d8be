package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fraudscope/internal/config"
	"fraudscope/internal/llm"
	"fraudscope/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:          "doctor",
	Short:        "Check that fraudscope is ready to run an analysis",
	SilenceUsage: true,
	Long: `Run preflight checks against the resolved configuration: the provider
must be supported, a model must be configured, and a credential must be
present for providers that need one. Nothing is sent anywhere.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

type doctorCheck struct {
	name string
	run  func() error
}

func runDoctor(cmd *cobra.Command, args []string) error {
	llmCfg, err := config.LoadLLMConfig()
	if err != nil {
		ui.RenderError(os.Stderr, err)
		return err
	}

	checks := []doctorCheck{
		{
			name: fmt.Sprintf("provider %q is supported", llmCfg.Provider),
			run: func() error {
				_, err := llm.ValidateProvider(string(llmCfg.Provider))
				return err
			},
		},
		{
			name: "a model is configured",
			run: func() error {
				if llmCfg.Model == "" {
					return fmt.Errorf("no model configured")
				}
				return nil
			},
		},
		{
			name: "credential is present",
			run: func() error {
				return llm.CheckCredential(llmCfg)
			},
		},
	}

	failed := 0
	for _, check := range checks {
		if err := check.run(); err != nil {
			failed++
			fmt.Fprintln(cmd.OutOrStdout(), ui.StyleError.Render("  ✗ ")+check.name+ui.StyleSubtle.Render(" — "+err.Error()))
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSuccess.Render("  ✓ ")+check.name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.StylePrefixDone.Render("All checks passed.")+" Run 'fraudscope analyze' to start.")
	return nil
}
