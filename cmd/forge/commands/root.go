// Package commands implements the CLI commands for the forge build tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/forge/internal/adapters/config"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/build"
	"go.trai.ch/forge/internal/core/ports"
)

// jsonToggler is implemented by loggers that can switch to JSON output.
type jsonToggler interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for forge.
type CLI struct {
	app     *app.App
	log     ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app and logger.
func New(a *app.App, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "forge",
		Short:         "A build orchestrator for C projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFilename, "Path to the configuration file")
	rootCmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")

	c := &CLI{
		app:     a,
		log:     log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if jsonLogs, _ := cmd.Flags().GetBool("json"); jsonLogs {
			if l, ok := c.log.(jsonToggler); ok {
				l.SetJSON(true)
			}
		}
	}

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newGraphCmd())
	rootCmd.AddCommand(c.newInitCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
