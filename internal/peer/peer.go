// Package peer establishes the TCP connection for a chat session: the
// responder binds a port and accepts exactly one peer, the initiator
// dials a remote address. Connection-level failures are fatal to the
// attempt and never retried.
package peer

import (
	"fmt"
	"net"
)

// Listen binds port on all interfaces, accepts a single connection and
// stops listening. No further clients are served.
func Listen(port uint16) (net.Conn, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%d", port))
	if err != nil {
		return nil, fmt.Errorf("binding port %d: %w", port, err)
	}
	defer ln.Close()

	conn, err := ln.Accept()
	if err != nil {
		return nil, fmt.Errorf("accepting peer: %w", err)
	}
	return conn, nil
}

// Dial connects to a listening responder at address (host:port).
func Dial(address string) (net.Conn, error) {
	conn, err := net.Dial("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", address, err)
	}
	return conn, nil
}
