// Package commands defines the streamchat CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - server  Listen on a port, accept one peer, chat as responder
//   - client  Connect to a server and chat as initiator
//
// # Implementation
//
// The root command builds the app context (console, transcript) before
// either subcommand runs. Domain parameters and cipher constants are
// compiled in; the CLI only selects a role and an endpoint.
package commands
