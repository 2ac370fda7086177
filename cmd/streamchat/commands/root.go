package commands

import (
	"os"

	"github.com/spf13/cobra"

	"streamchat/internal/app"
)

var appCtx *app.App

func Execute() error {
	root := &cobra.Command{
		Use:   "streamchat",
		Short: "Stream cipher chat with Diffie-Hellman key agreement",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			appCtx = app.New(app.Config{
				In:  os.Stdin,
				Out: os.Stdout,
			})
		},
	}

	root.AddCommand(serverCmd(), clientCmd())
	return root.Execute()
}
