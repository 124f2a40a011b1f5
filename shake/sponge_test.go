package shake

import (
	"bytes"
	"errors"
	"testing"
)

func TestXOFDeterminism(t *testing.T) {
	msg := []byte("Hello, Dilithium!")
	a, err := XOF(Shake128, msg, 64)
	if err != nil {
		t.Fatalf("xof: %v", err)
	}
	b, err := XOF(Shake128, msg, 64)
	if err != nil {
		t.Fatalf("xof second: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("same input produced different output:\n%x\n%x", a, b)
	}
}

func TestPrefixProperty(t *testing.T) {
	msg := []byte("Hello, Dilithium!")
	long, err := XOF(Shake128, msg, 256)
	if err != nil {
		t.Fatalf("xof long: %v", err)
	}
	short, err := XOF(Shake128, msg, 16)
	if err != nil {
		t.Fatalf("xof short: %v", err)
	}
	if !bytes.Equal(long[:16], short) {
		t.Fatalf("16-byte output is not a prefix of the 256-byte output:\n%x\n%x", short, long[:16])
	}
}

// Squeezing in pieces must continue the same output stream, even across
// rate boundaries.
func TestSqueezeInPieces(t *testing.T) {
	msg := []byte("split squeeze")
	for _, v := range []Variant{Shake128, Shake256} {
		whole, err := XOF(v, msg, 400)
		if err != nil {
			t.Fatalf("xof: %v", err)
		}
		s, err := NewSponge(v)
		if err != nil {
			t.Fatalf("new sponge: %v", err)
		}
		if err := s.Absorb(msg); err != nil {
			t.Fatalf("absorb: %v", err)
		}
		if err := s.Finalize(); err != nil {
			t.Fatalf("finalize: %v", err)
		}
		var pieces []byte
		for _, n := range []int{1, 16, 150, 200, 33} {
			p, err := s.Squeeze(n)
			if err != nil {
				t.Fatalf("squeeze %d: %v", n, err)
			}
			pieces = append(pieces, p...)
		}
		if !bytes.Equal(pieces, whole) {
			t.Fatalf("variant %d: piecewise squeeze diverged from single squeeze", v)
		}
	}
}

// Absorbing in pieces must equal absorbing the concatenation, including
// inputs spanning more than one rate block.
func TestAbsorbInPieces(t *testing.T) {
	msg := make([]byte, 500)
	for i := range msg {
		msg[i] = byte(i * 7)
	}
	whole, err := XOF(Shake256, msg, 64)
	if err != nil {
		t.Fatalf("xof: %v", err)
	}
	s, err := NewSponge(Shake256)
	if err != nil {
		t.Fatalf("new sponge: %v", err)
	}
	for _, cut := range [][]byte{msg[:3], msg[3:136], msg[136:137], msg[137:]} {
		if err := s.Absorb(cut); err != nil {
			t.Fatalf("absorb: %v", err)
		}
	}
	if err := s.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	out, err := s.Squeeze(64)
	if err != nil {
		t.Fatalf("squeeze: %v", err)
	}
	if !bytes.Equal(out, whole) {
		t.Fatalf("piecewise absorb diverged from single absorb")
	}
}

func TestVariantSeparation(t *testing.T) {
	msg := []byte("Hello, Dilithium!")
	a, err := XOF(Shake128, msg, 64)
	if err != nil {
		t.Fatalf("xof 128: %v", err)
	}
	b, err := XOF(Shake256, msg, 64)
	if err != nil {
		t.Fatalf("xof 256: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatalf("variants produced identical output: %x", a)
	}
}

func TestUnknownVariant(t *testing.T) {
	if _, err := NewSponge(Variant(192)); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("NewSponge(192) err = %v, want ErrUnknownVariant", err)
	}
	if _, err := XOF(Variant(0), []byte("x"), 8); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("XOF(0) err = %v, want ErrUnknownVariant", err)
	}
}

func TestProtocolViolations(t *testing.T) {
	s, err := NewSponge(Shake128)
	if err != nil {
		t.Fatalf("new sponge: %v", err)
	}
	if _, err := s.Squeeze(8); !errors.Is(err, ErrNotFinalized) {
		t.Fatalf("squeeze before finalize err = %v, want ErrNotFinalized", err)
	}
	if err := s.Absorb([]byte("abc")); err != nil {
		t.Fatalf("absorb: %v", err)
	}
	if err := s.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if err := s.Absorb([]byte("more")); !errors.Is(err, ErrAlreadyFinalized) {
		t.Fatalf("absorb after finalize err = %v, want ErrAlreadyFinalized", err)
	}
	if err := s.Finalize(); !errors.Is(err, ErrAlreadyFinalized) {
		t.Fatalf("second finalize err = %v, want ErrAlreadyFinalized", err)
	}
}

func TestTraceLength(t *testing.T) {
	var zero [numLanes]uint64
	states := TracePermutation(zero)
	if len(states) != numRounds+1 {
		t.Fatalf("trace length = %d, want %d", len(states), numRounds+1)
	}
	if states[0] != zero {
		t.Fatalf("trace[0] is not the initial state")
	}
	// Full permutation must agree with the last trace entry.
	state := zero
	keccakF1600(&state)
	if states[numRounds] != state {
		t.Fatalf("trace final state diverges from keccakF1600")
	}
}
