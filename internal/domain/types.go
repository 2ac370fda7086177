package domain

// Role selects a peer's side of the connection. The two roles differ in
// handshake ordering (the initiator writes its public value first, the
// responder reads first) and in which chat turn comes first once the
// channel is established.
type Role uint8

const (
	Initiator Role = iota + 1
	Responder
)

func (r Role) String() string {
	switch r {
	case Initiator:
		return "initiator"
	case Responder:
		return "responder"
	default:
		return "unknown"
	}
}

// KeyPair is an ephemeral Diffie-Hellman key pair. It exists only for the
// duration of one handshake; the private scalar is never transmitted.
type KeyPair struct {
	Private uint64
	Public  uint64
}
