// Package dilithium implements the key-generation half of a simplified
// Dilithium-style lattice signature scheme over Z_q[X]/(X^N+1). Seeds are
// expanded through the shake sponge, secrets are sampled with small bounded
// coefficients, and the public value t = A*s1 + s2 is split into high and
// low bits. Multiplication is the schoolbook negacyclic convolution; the
// NTT fast path and rejection sampling of the standardized scheme are
// deliberately absent.
package dilithium

const (
	// Q is the prime modulus 2^23 - 2^13 + 1.
	Q = 8380417
	// N is the polynomial degree.
	N = 256
	// K is the matrix height and the length of s2, t0, t1.
	K = 4
	// L is the matrix width and the length of s1.
	L = 4
	// Eta bounds secret coefficients to [-Eta, Eta].
	Eta = 2
	// D is the number of low bits dropped from t by Power2Round.
	D = 13
	// SeedBytes is the length of the public and secret seeds.
	SeedBytes = 32
)
