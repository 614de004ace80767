package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [settings-file]",
		Short: "Write a settings file with default values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			force, _ := cmd.Flags().GetBool("force")
			return c.app.Init(path, force)
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing settings file")
	return cmd
}
