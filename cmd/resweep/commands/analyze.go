package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/resweep/internal/app"
)

func (c *CLI) newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [settings-file]",
		Short: "Report unused and used resources",
		Long: "Analyze reads the settings file (resweep.yaml by default), collects the declared\n" +
			"resources and counts their references in the source tree.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.AnalyzeOptions{}
			if len(args) == 1 {
				opts.SettingsPath = args[0]
			}

			flags := cmd.Flags()
			opts.Root, _ = flags.GetString("root")
			opts.Extraction, _ = flags.GetString("extraction")
			opts.Scanning, _ = flags.GetString("scanning")
			opts.Format, _ = flags.GetString("format")
			opts.OutputMode, _ = flags.GetString("output-mode")
			opts.Save, _ = flags.GetBool("save")
			opts.UnusedOnly, _ = flags.GetBool("unused-only")

			// If --ci is set, override output-mode to "linear"
			if ci, _ := flags.GetBool("ci"); ci {
				opts.OutputMode = "linear"
			}

			return c.app.Analyze(cmd.Context(), opts)
		},
	}
	cmd.Flags().String("root", "", "Source root to analyze, overriding the settings file")
	cmd.Flags().String("extraction", "", "Extraction strategy: pattern or structural")
	cmd.Flags().String("scanning", "", "Scanning strategy: substring or structural")
	cmd.Flags().StringP("format", "f", "text", "Report format: text or json")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	cmd.Flags().Bool("save", false, "Persist the overrides to the settings file")
	cmd.Flags().Bool("unused-only", false, "Only report unused resources")
	return cmd
}
