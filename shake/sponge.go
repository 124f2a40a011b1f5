// Package shake implements the SHAKE-128/256 extendable-output functions
// from first principles: a Keccak-f[1600] permutation core wrapped in the
// absorb/finalize/squeeze sponge protocol. The package is the deterministic
// seed-expansion oracle for the key-generation pipeline; it is written for
// study, not for constant-time operation.
package shake

type phase int

const (
	absorbing phase = iota
	squeezing
)

// Sponge is a Keccak sponge over a 1600-bit state. A Sponge is exclusively
// owned by one logical hashing operation: zero value is not usable, use
// NewSponge, and discard the instance once squeezed.
type Sponge struct {
	lanes [numLanes]uint64
	rate  int // rate in bytes
	pos   int // absorb/squeeze cursor, always in [0, rate)
	phase phase
}

// NewSponge returns a sponge initialized for the given variant.
// Unrecognized variants are rejected, never defaulted.
func NewSponge(v Variant) (*Sponge, error) {
	rate, err := rateOf(v)
	if err != nil {
		return nil, err
	}
	return &Sponge{rate: rate}, nil
}

// xorByte XORs b into the state at byte position pos (little-endian lanes).
func (s *Sponge) xorByte(pos int, b byte) {
	s.lanes[pos/8] ^= uint64(b) << (8 * uint(pos%8))
}

// byteAt reads the state byte at position pos (little-endian lanes).
func (s *Sponge) byteAt(pos int) byte {
	return byte(s.lanes[pos/8] >> (8 * uint(pos%8)))
}

// Absorb XORs input into the rate window, permuting whenever the window
// fills. Splitting the input across multiple calls is equivalent to one
// call with the concatenation.
func (s *Sponge) Absorb(input []byte) error {
	if s.phase != absorbing {
		return ErrAlreadyFinalized
	}
	for _, b := range input {
		s.xorByte(s.pos, b)
		s.pos++
		if s.pos == s.rate {
			keccakF1600(&s.lanes)
			s.pos = 0
		}
	}
	return nil
}

// Finalize appends the SHAKE domain-separation suffix (0x1F at the cursor,
// 0x80 at the last rate byte), applies the permutation once, and switches
// the sponge to the squeezing phase.
func (s *Sponge) Finalize() error {
	if s.phase != absorbing {
		return ErrAlreadyFinalized
	}
	s.xorByte(s.pos, 0x1F)
	s.xorByte(s.rate-1, 0x80)
	keccakF1600(&s.lanes)
	s.pos = 0
	s.phase = squeezing
	return nil
}

// Squeeze produces the next n output bytes, permuting whenever the rate
// window is exhausted. Successive calls continue the output stream, so
// squeezing in pieces yields the same bytes as one larger squeeze.
func (s *Sponge) Squeeze(n int) ([]byte, error) {
	if s.phase != squeezing {
		return nil, ErrNotFinalized
	}
	out := make([]byte, n)
	for i := range out {
		if s.pos == s.rate {
			keccakF1600(&s.lanes)
			s.pos = 0
		}
		out[i] = s.byteAt(s.pos)
		s.pos++
	}
	return out, nil
}
