package session

import (
	"fmt"
	"io"

	"streamchat/internal/crypto"
	"streamchat/internal/domain"
	"streamchat/internal/protocol/dh"
	"streamchat/internal/protocol/keystream"
	"streamchat/internal/transcript"
	"streamchat/internal/wire"
)

// State is the session lifecycle position.
type State uint8

const (
	StateHandshaking State = iota
	StateEstablished
	StateClosed
)

// keystreamPreviewLen is how many keystream bytes the transcript shows
// after establishment.
const keystreamPreviewLen = 12

type turn uint8

const (
	turnSend turn = iota
	turnReceive
)

// Session owns one side of a chat connection: the lent byte stream, the
// two per-direction keystream generators, and the derived shared secret.
// It is not safe for concurrent use; everything runs on the caller's
// goroutine.
type Session struct {
	conn    io.ReadWriter
	role    domain.Role
	console domain.Console
	log     *transcript.Printer

	// Committed once at construction so the handshake ordering and the
	// turn ordering cannot drift apart mid-session.
	exchange func(io.ReadWriter, domain.KeyPair) (uint64, error)
	next     turn

	state  State
	secret uint64
	send   *keystream.Generator // outbound direction, ours to advance
	recv   *keystream.Generator // inbound direction, advanced as we decode
}

// New prepares a session for conn in the given role. The connection is
// lent, not owned: the caller closes it after Run returns.
func New(conn io.ReadWriter, role domain.Role, console domain.Console, log *transcript.Printer) *Session {
	s := &Session{
		conn:    conn,
		role:    role,
		console: console,
		log:     log,
		state:   StateHandshaking,
	}
	if role == domain.Initiator {
		s.exchange = dh.ExchangeInitiator
		s.next = turnSend
	} else {
		s.exchange = dh.ExchangeResponder
		s.next = turnReceive
	}
	return s
}

// State reports the current lifecycle position.
func (s *Session) State() State { return s.state }

// Secret exposes the derived shared secret once established. Display only.
func (s *Session) Secret() uint64 { return s.secret }

// Run performs the handshake and then alternates chat turns until the
// connection closes or local input ends. A peer disconnect is a normal
// termination and returns nil; handshake and write failures are fatal.
func (s *Session) Run() error {
	if err := s.handshake(); err != nil {
		s.state = StateClosed
		return err
	}
	err := s.loop()
	s.state = StateClosed
	s.log.Closed()
	return err
}

func (s *Session) handshake() error {
	kp, err := dh.NewKeyPair()
	if err != nil {
		return err
	}
	s.log.Params(dh.P, dh.G)
	s.log.KeyPair(kp)

	peerPublic, err := s.exchange(s.conn, kp)
	if err != nil {
		return fmt.Errorf("handshake as %s: %w", s.role, err)
	}
	s.log.Exchange(s.role, kp.Public, peerPublic)

	s.secret = dh.SharedSecret(peerPublic, kp.Private)
	s.log.SharedSecret(peerPublic, s.secret)

	// Both generators start from the same seed with their counters at
	// zero. From here on they advance independently, one per direction.
	s.send = keystream.New(s.secret)
	s.recv = keystream.New(s.secret)

	s.log.KeystreamPreview(s.secret, keystreamPreviewLen)
	s.log.Established(crypto.Fingerprint(s.secret))
	s.state = StateEstablished
	return nil
}

func (s *Session) loop() error {
	for {
		var (
			err  error
			open bool
		)
		if s.next == turnSend {
			open, err = s.sendTurn()
			s.next = turnReceive
		} else {
			open, err = s.receiveTurn()
			s.next = turnSend
		}
		if err != nil || !open {
			return err
		}
	}
}

// sendTurn reads one local line, encrypts it with the outbound generator
// and writes one envelope. End of local input ends the session cleanly;
// a write failure is fatal.
func (s *Session) sendTurn() (open bool, err error) {
	s.log.Prompt()
	line, err := s.console.ReadLine()
	if err != nil {
		return false, nil
	}
	plain := []byte(line)
	cipher := s.send.Transform(plain)
	s.log.SendTurn(plain, cipher)
	if err := wire.WriteEnvelope(s.conn, cipher); err != nil {
		return false, err
	}
	return true, nil
}

// receiveTurn reads one envelope and decrypts it with the inbound
// generator. Any framing or read failure, including a connection that
// closes mid-header, counts as the peer hanging up and ends the session
// cleanly.
func (s *Session) receiveTurn() (open bool, err error) {
	cipher, err := wire.ReadEnvelope(s.conn)
	if err != nil {
		return false, nil
	}
	plain := s.recv.Transform(cipher)
	s.log.RecvTurn(cipher, plain)
	if err := s.console.WriteLine(string(plain)); err != nil {
		return false, err
	}
	return true, nil
}
