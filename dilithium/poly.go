package dilithium

// Poly is a polynomial of degree < N with int32 coefficients. Ring
// operations return coefficients canonically reduced into [0, Q); freshly
// sampled secrets hold signed values in [-Eta, Eta] until they enter a
// ring operation.
type Poly [N]int32

// VecL is a vector of L polynomials (the s1 shape).
type VecL [L]Poly

// VecK is a vector of K polynomials (the s2/t shape).
type VecK [K]Poly

// Matrix is the K x L public matrix A.
type Matrix [K][L]Poly

// One returns the multiplicative identity of the ring.
func One() Poly {
	var p Poly
	p[0] = 1
	return p
}

// Add returns a + b with every coefficient reduced into [0, Q).
func (p Poly) Add(q Poly) Poly {
	var r Poly
	for i := 0; i < N; i++ {
		r[i] = reduceModQ(int64(p[i]) + int64(q[i]))
	}
	return r
}

// Mul returns p * q modulo (X^N + 1, Q) by schoolbook negacyclic
// convolution: the a_i*b_j term lands at index (i+j) mod N and is negated
// whenever i+j wraps past N, since X^N = -1 in the quotient ring. Partial
// products are taken in int64 so no intermediate overflows before the
// per-term reduction.
func (p Poly) Mul(q Poly) Poly {
	var r Poly
	for i := 0; i < N; i++ {
		if p[i] == 0 {
			continue
		}
		for j := 0; j < N; j++ {
			k := i + j
			prod := int64(p[i]) * int64(q[j])
			if k >= N {
				k -= N
				prod = -prod
			}
			r[k] = reduceModQ(int64(r[k]) + prod)
		}
	}
	return r
}

// MulVec returns A * s, a length-K vector whose i-th entry is the sum over
// j of A[i][j] * s[j].
func (m *Matrix) MulVec(s *VecL) VecK {
	var t VecK
	for i := 0; i < K; i++ {
		for j := 0; j < L; j++ {
			t[i] = t[i].Add(m[i][j].Mul(s[j]))
		}
	}
	return t
}
