package dilithium

// reduceModQ returns the canonical representative of a in [0, Q).
// Negative inputs are mapped correctly rather than truncated.
func reduceModQ(a int64) int32 {
	r := int32(a % Q)
	if r < 0 {
		r += Q
	}
	return r
}
