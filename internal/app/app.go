package app

import (
	"fmt"
	"net"

	"streamchat/internal/domain"
	"streamchat/internal/peer"
	"streamchat/internal/session"
	"streamchat/internal/transcript"
)

// App bundles the console and transcript for the role entry points.
type App struct {
	console domain.Console
	log     *transcript.Printer
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	return &App{
		console: newConsole(cfg.In, cfg.Out),
		log:     transcript.New(cfg.Out),
	}
}

// Serve runs one responder session: bind, accept one peer, chat until
// the connection closes.
func (a *App) Serve(port uint16) error {
	conn, err := peer.Listen(port)
	if err != nil {
		return err
	}
	return a.run(conn, domain.Responder)
}

// Connect runs one initiator session against a listening responder.
func (a *App) Connect(address string) error {
	conn, err := peer.Dial(address)
	if err != nil {
		return err
	}
	return a.run(conn, domain.Initiator)
}

func (a *App) run(conn net.Conn, role domain.Role) error {
	defer conn.Close()
	sess := session.New(conn, role, a.console, a.log)
	if err := sess.Run(); err != nil {
		return fmt.Errorf("%s session: %w", role, err)
	}
	return nil
}
