package shake

import "fmt"

// XOF is the one-shot extendable-output entry point: init, absorb the whole
// input, finalize, and squeeze n bytes. Thanks to the prefix property,
// XOF(v, in, n1) is a prefix of XOF(v, in, n2) whenever n1 <= n2.
func XOF(v Variant, input []byte, n int) ([]byte, error) {
	s, err := NewSponge(v)
	if err != nil {
		return nil, err
	}
	if err := s.Absorb(input); err != nil {
		return nil, fmt.Errorf("absorb: %w", err)
	}
	if err := s.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize: %w", err)
	}
	out, err := s.Squeeze(n)
	if err != nil {
		return nil, fmt.Errorf("squeeze: %w", err)
	}
	return out, nil
}
