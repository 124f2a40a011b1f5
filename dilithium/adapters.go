package dilithium

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/ring"
)

// NewRingQ builds the Lattigo ring Z_Q[X]/(X^N+1). Q = 2^23 - 2^13 + 1 is
// 1 mod 2N, so the negacyclic NTT is available there; it serves as an
// independent oracle for the schoolbook convolution.
func NewRingQ() (*ring.Ring, error) {
	r, err := ring.NewRing(N, []uint64{Q})
	if err != nil {
		return nil, fmt.Errorf("build ring: %w", err)
	}
	return r, nil
}

// ToRingPoly embeds p into a Lattigo polynomial, mapping signed
// coefficients to their canonical residues.
func ToRingPoly(r *ring.Ring, p Poly) *ring.Poly {
	out := r.NewPoly()
	for i := 0; i < N; i++ {
		out.Coeffs[0][i] = uint64(reduceModQ(int64(p[i])))
	}
	return out
}

// FromRingPoly reads a Lattigo polynomial back into a Poly.
func FromRingPoly(r *ring.Ring, a *ring.Poly) (Poly, error) {
	var p Poly
	if a.N() != N {
		return p, fmt.Errorf("degree %d, want %d", a.N(), N)
	}
	for i := 0; i < N; i++ {
		p[i] = int32(a.Coeffs[0][i])
	}
	return p, nil
}

// ConvolveNTT multiplies a and b modulo (X^N+1, Q) through the Lattigo NTT
// path: Montgomery form, forward transform, pointwise product, and back.
func ConvolveNTT(r *ring.Ring, a, b Poly) (Poly, error) {
	pa := ToRingPoly(r, a)
	pb := ToRingPoly(r, b)
	r.MForm(pa, pa)
	r.NTT(pa, pa)
	r.NTT(pb, pb)
	res := r.NewPoly()
	r.MulCoeffsMontgomery(pa, pb, res)
	r.InvNTT(res, res)
	return FromRingPoly(r, res)
}
