package domain

// Console is the local operator's line-based terminal. The session depends on
// it for outbound plaintext and delivers decoded peer lines to it; it is a
// collaborator interface, not part of the wire protocol.
type Console interface {
	// ReadLine blocks for the next outbound line. It returns an error
	// (typically io.EOF) when local input ends.
	ReadLine() (string, error)

	// WriteLine delivers one decoded line from the peer.
	WriteLine(s string) error
}
