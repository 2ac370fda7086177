package commands

import (
	"github.com/spf13/cobra"
)

// client <address>: connect to a listening server and chat as initiator.
func clientCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "client <address>",
		Short: "Connect to a server and chat as initiator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Connect(args[0])
		},
	}
}
