package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relay-run/relay/pkg/version"
)

// NewVersionCommand prints build version metadata.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return nil
		},
	}
}
