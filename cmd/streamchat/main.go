package main

import (
	"os"

	"streamchat/cmd/streamchat/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
