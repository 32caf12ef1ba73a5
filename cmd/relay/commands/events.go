package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relay-run/relay/pkg/events"
)

// NewEventsCommand lists the event-name vocabulary the hub dispatches.
func NewEventsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List the lifecycle event vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range events.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
