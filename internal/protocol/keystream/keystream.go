package keystream

// LCG constants, fixed on both peers.
const (
	A uint64 = 1103515245
	C uint64 = 12345
	M uint64 = 1 << 32
)

// Generator is a deterministic keystream source. It is not safe for
// concurrent use; a session serialises access per direction.
type Generator struct {
	state uint64
}

// New seeds a generator. The seed is the full 64-bit shared secret; the
// first step reduces state below 2^32.
func New(seed uint64) *Generator {
	return &Generator{state: seed}
}

// Next advances the state one LCG step and returns the low 8 bits.
func (g *Generator) Next() byte {
	g.state = (A*g.state + C) % M
	return byte(g.state)
}

// Transform XORs b with the keystream, consuming exactly len(b) generator
// steps. Encryption and decryption are the same operation given
// synchronized generators.
func (g *Generator) Transform(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = v ^ g.Next()
	}
	return out
}
