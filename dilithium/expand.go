package dilithium

import (
	"fmt"
	"os"

	"Dilithium-KeyGen/shake"
)

// ExpandMatrix derives the public K x L matrix from a 32-byte seed. Each
// entry (i, j) is produced by squeezing 4N bytes of SHAKE-256 output from
// seed||i||j and packing consecutive 3-byte groups little-endian, reduced
// modulo Q. The direct reduction keeps a small bias towards low residues
// versus uniform; rejection sampling is intentionally not performed.
func ExpandMatrix(seed []byte) (*Matrix, error) {
	if len(seed) != SeedBytes {
		return nil, fmt.Errorf("seed length %d, want %d", len(seed), SeedBytes)
	}
	var m Matrix
	input := make([]byte, SeedBytes+2)
	copy(input, seed)
	for i := 0; i < K; i++ {
		for j := 0; j < L; j++ {
			input[SeedBytes] = byte(i)
			input[SeedBytes+1] = byte(j)
			buf, err := shake.XOF(shake.Shake256, input, N*4)
			if err != nil {
				return nil, fmt.Errorf("expand A[%d][%d]: %w", i, j, err)
			}
			for k := 0; k < N; k++ {
				val := uint32(buf[3*k]) | uint32(buf[3*k+1])<<8 | uint32(buf[3*k+2])<<16
				m[i][j][k] = int32(val % Q)
			}
			dbg(os.Stderr, "[Expand] A[%d][%d] derived\n", i, j)
		}
	}
	return &m, nil
}

// SampleSmall derives one secret polynomial with coefficients in
// [-Eta, Eta] from a 32-byte seed and a domain-separating nonce. N bytes
// are squeezed from SHAKE-256 over seed||nonce (nonce little-endian, two
// bytes) and each byte b maps to (b mod (2*Eta+1)) - Eta.
func SampleSmall(seed []byte, nonce uint16) (*Poly, error) {
	if len(seed) != SeedBytes {
		return nil, fmt.Errorf("seed length %d, want %d", len(seed), SeedBytes)
	}
	input := make([]byte, SeedBytes+2)
	copy(input, seed)
	input[SeedBytes] = byte(nonce)
	input[SeedBytes+1] = byte(nonce >> 8)
	buf, err := shake.XOF(shake.Shake256, input, N)
	if err != nil {
		return nil, fmt.Errorf("sample small (nonce %d): %w", nonce, err)
	}
	var p Poly
	for i := 0; i < N; i++ {
		p[i] = int32(buf[i]%(2*Eta+1)) - Eta
	}
	return &p, nil
}
