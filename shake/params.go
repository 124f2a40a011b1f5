package shake

import "errors"

// Variant selects the sponge security level. The numeric value is the
// conventional security strength in bits.
type Variant int

const (
	// Shake128 uses a 168-byte rate (1344-bit rate, 256-bit capacity).
	Shake128 Variant = 128
	// Shake256 uses a 136-byte rate (1088-bit rate, 512-bit capacity).
	Shake256 Variant = 256
)

const (
	rate128 = 168
	rate256 = 136
)

var (
	// ErrUnknownVariant is returned when a sponge is initialized with a
	// variant other than Shake128 or Shake256. An unrecognized security
	// parameter is never substituted with a default.
	ErrUnknownVariant = errors.New("shake: unknown variant")
	// ErrAlreadyFinalized is returned by Absorb or Finalize once the sponge
	// has entered the squeezing phase.
	ErrAlreadyFinalized = errors.New("shake: sponge already finalized")
	// ErrNotFinalized is returned by Squeeze before Finalize has been called.
	ErrNotFinalized = errors.New("shake: sponge not finalized")
)

// rateOf maps a variant to its rate in bytes.
func rateOf(v Variant) (int, error) {
	switch v {
	case Shake128:
		return rate128, nil
	case Shake256:
		return rate256, nil
	default:
		return 0, ErrUnknownVariant
	}
}
