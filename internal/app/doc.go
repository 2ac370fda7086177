// Package app wires application dependencies for the CLI.
//
// It builds the operator console and the transcript printer from Config
// and exposes the two role entry points (Serve, Connect) for commands to
// call. Protocol constants are compiled in and never part of Config.
package app
