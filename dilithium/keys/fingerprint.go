package keys

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Fingerprint returns a short hex identifier for the public key, a
// 16-byte SHAKE-256 digest over the seed and the packed t1 rows.
func (pk *PublicKey) Fingerprint() string {
	var buf []byte
	buf = append(buf, pk.Seed...)
	for _, row := range pk.T1 {
		for _, c := range row {
			buf = append(buf, byte(c), byte(c>>8), byte(c>>16), byte(c>>24))
		}
	}
	var sum [16]byte
	sha3.ShakeSum256(sum[:], buf)
	return hex.EncodeToString(sum[:])
}
