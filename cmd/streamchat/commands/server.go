package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// server <port>: bind the port, accept one peer, chat as responder.
func serverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server <port>",
		Short: "Listen for one peer and chat as responder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := strconv.ParseUint(args[0], 10, 16)
			if err != nil {
				return fmt.Errorf("invalid port %q: %w", args[0], err)
			}
			return appCtx.Serve(uint16(port))
		},
	}
}
