package shake

import "math/bits"

const (
	numRounds = 24
	numLanes  = 25
)

// rotations holds the ρ-step offsets indexed by idx(x,y) = 5y+x.
// Values are the published Keccak-f[1600] reference table.
var rotations = [numLanes]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// roundConstants holds the ι-step constants for the 24 rounds.
// Values are the published Keccak-f[1600] reference table.
var roundConstants = [numRounds]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// idx converts 5x5 lane coordinates to a linear index.
func idx(x, y int) int { return 5*y + x }

// keccakF1600 applies the full 24-round Keccak-f[1600] permutation in place.
func keccakF1600(state *[numLanes]uint64) {
	for round := 0; round < numRounds; round++ {
		keccakRound(state, round)
	}
}

// keccakRound applies one round: θ, combined ρ/π, χ, ι.
func keccakRound(state *[numLanes]uint64, round int) {
	var c, d [5]uint64
	var b [numLanes]uint64

	// θ: column parity mixing
	for x := 0; x < 5; x++ {
		c[x] = state[idx(x, 0)] ^ state[idx(x, 1)] ^ state[idx(x, 2)] ^
			state[idx(x, 3)] ^ state[idx(x, 4)]
	}
	for x := 0; x < 5; x++ {
		d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
	}
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			state[idx(x, y)] ^= d[x]
		}
	}

	// ρ/π: rotate lanes and permute their positions
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			b[idx(y, (2*x+3*y)%5)] = bits.RotateLeft64(state[idx(x, y)], rotations[idx(x, y)])
		}
	}

	// χ: non-linear row mixing
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			state[idx(x, y)] = b[idx(x, y)] ^ (^b[idx((x+1)%5, y)] & b[idx((x+2)%5, y)])
		}
	}

	// ι: round constant injection
	state[0] ^= roundConstants[round]
}
