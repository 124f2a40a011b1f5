package shake

// TracePermutation applies Keccak-f[1600] to init and returns the state
// after every round boundary, including the initial state. The returned
// slice has length numRounds+1. Intended for debugging and for inspecting
// diffusion round by round; the permutation itself is unaffected.
func TracePermutation(init [numLanes]uint64) [][numLanes]uint64 {
	states := make([][numLanes]uint64, 0, numRounds+1)
	state := init
	states = append(states, state)
	for round := 0; round < numRounds; round++ {
		keccakRound(&state, round)
		states = append(states, state)
	}
	return states
}
