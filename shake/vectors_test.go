package shake

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/sha3"
)

// Published Keccak-f[1600] reference vector: the state after one
// permutation of the all-zero state.
var zeroStateVector = [numLanes]uint64{
	0xF1258F7940E1DDE7, 0x84D5CCF933C0478A, 0xD598261EA65AA9EE, 0xBD1547306F80494D, 0x8B284E056253D057,
	0xFF97A42D7F8E6FD4, 0x90FEE5A0A44647C4, 0x8C5BDA0CD6192E76, 0xAD30A6F71B19059C, 0x30935AB7D08FFC64,
	0xEB5AA93F2317D635, 0xA9A6E6260D712103, 0x81A57C16DBCF555F, 0x43B831CD0347C826, 0x01F22F1A11A5569F,
	0x05E5635A21D9AE61, 0x64BEFEF28CC970F2, 0x613670957BC46611, 0xB87C5A554FD00ECB, 0x8C3EE88A1CCF32C8,
	0x940C7922AE3A2614, 0x1841F924A2C509E4, 0x16F53526E70465C2, 0x75F644E97F30A13B, 0xEAF1FF7B5CECA249,
}

func TestPermutationZeroStateKAT(t *testing.T) {
	var state [numLanes]uint64
	keccakF1600(&state)
	for i := range state {
		if state[i] != zeroStateVector[i] {
			t.Fatalf("lane %d = %016x, want %016x", i, state[i], zeroStateVector[i])
		}
	}
}

// The sponge with suffix 0x1F and rates 168/136 is exactly SHAKE-128/256,
// so every output must match the x/crypto/sha3 implementation byte for byte.
func TestAgainstReferenceSHAKE(t *testing.T) {
	msgs := [][]byte{
		nil,
		[]byte(""),
		[]byte("Hello, Dilithium!"),
		bytes.Repeat([]byte{0xA5}, 167),
		bytes.Repeat([]byte{0x5A}, 168),
		bytes.Repeat([]byte{0x42}, 1000),
	}
	lengths := []int{1, 16, 32, 136, 168, 500}
	for _, msg := range msgs {
		for _, n := range lengths {
			got, err := XOF(Shake128, msg, n)
			if err != nil {
				t.Fatalf("xof 128: %v", err)
			}
			want := make([]byte, n)
			sha3.ShakeSum128(want, msg)
			if !bytes.Equal(got, want) {
				t.Fatalf("shake128 len(msg)=%d n=%d:\ngot  %x\nwant %x", len(msg), n, got, want)
			}

			got, err = XOF(Shake256, msg, n)
			if err != nil {
				t.Fatalf("xof 256: %v", err)
			}
			sha3.ShakeSum256(want, msg)
			if !bytes.Equal(got, want) {
				t.Fatalf("shake256 len(msg)=%d n=%d:\ngot  %x\nwant %x", len(msg), n, got, want)
			}
		}
	}
}
