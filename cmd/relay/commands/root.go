package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/relay-run/relay/pkg/config"
	"github.com/relay-run/relay/pkg/logging"
)

const cliExecutable = "relay"

// NewCommand constructs the top-level relay CLI command, wiring global
// flags, configuration loading, and logging.
func NewCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   cliExecutable,
		Short: "Relay fans test lifecycle events out to pluggable reporters",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(cmd.Flags(), configFile)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			if settings.Log.Format == "json" {
				logging.SetLogWriter(os.Stderr)
			}
			if err := logging.ConfigureGlobalLogging(settings.Log.Level); err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			ctx := config.WithContext(cmd.Context(), settings)
			cmd.SetContext(ctx)
			if root := cmd.Root(); root != nil && root != cmd {
				root.SetContext(ctx)
			}
			return nil
		},
	}

	cmd.SilenceUsage = true

	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file path")
	config.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewReplayCommand())
	cmd.AddCommand(NewEventsCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
