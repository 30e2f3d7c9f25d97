// Package cli defines the typespeed command tree.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/typespeed-backend/internal/app"
	"github.com/heartmarshall/typespeed-backend/internal/config"
)

// Execute runs the CLI.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the root command with its subcommands attached.
func NewRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "typespeed",
		Short:         "Typing speed test backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				return os.Setenv("CONFIG_PATH", configPath)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config (overrides CONFIG_PATH)")
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newCleanupCmd())
	return cmd
}

// loadConfig is swapped in tests.
var loadConfig = config.Load
