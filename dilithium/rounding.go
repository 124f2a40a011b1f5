package dilithium

// Power2Round splits every coefficient c of t into high bits t1 and the low
// D bits t0, so that c == t1*2^D + t0 exactly. Unlike the standardized
// scheme there is no centering of t0 around zero; the split stays a plain,
// invertible bit decomposition.
func Power2Round(t Poly) (t1, t0 Poly) {
	const mask = (1 << D) - 1
	for i := 0; i < N; i++ {
		c := t[i]
		t0[i] = c & mask
		t1[i] = (c - t0[i]) >> D
	}
	return t1, t0
}

// Power2RoundVec applies Power2Round to every polynomial of t.
func Power2RoundVec(t VecK) (t1, t0 VecK) {
	for i := 0; i < K; i++ {
		t1[i], t0[i] = Power2Round(t[i])
	}
	return t1, t0
}
