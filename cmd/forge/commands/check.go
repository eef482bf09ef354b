package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/forge/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the project configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.Check(cmd.Context(), app.CheckOptions{
				ConfigPath: configPath,
				Watch:      watch,
			})
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Re-run verification whenever the configuration changes")
	return cmd
}
