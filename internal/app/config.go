package app

import "io"

// Config holds runtime wiring options for building the app.
type Config struct {
	In  io.Reader // operator input; the CLI passes os.Stdin
	Out io.Writer // transcript and chat output; the CLI passes os.Stdout
}
