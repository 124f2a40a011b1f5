package dilithium

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"time"

	"Dilithium-KeyGen/prof"
)

// PublicKey is the public half of a generated pair: the matrix seed and the
// high bits of t = A*s1 + s2.
type PublicKey struct {
	Seed []byte
	T1   VecK
}

// SecretKey is the secret half: the same matrix seed, the two small secret
// vectors, and the low bits of t.
type SecretKey struct {
	Seed []byte
	S1   VecL
	S2   VecK
	T0   VecK
}

// Step identifies one stage of the key-generation pipeline.
type Step string

const (
	StepSeedGen      Step = "seedgen"
	StepExpandMatrix Step = "expand_matrix"
	StepSampleS1     Step = "sample_s1"
	StepSampleS2     Step = "sample_s2"
	StepComputeT     Step = "compute_t"
	StepSplitT       Step = "split_t"
	StepPackage      Step = "package"
)

// StepEvent reports a completed pipeline stage to an observer.
type StepEvent struct {
	Step    Step
	Elapsed time.Duration
}

// KeygenOpts controls key generation. The zero value uses the OS random
// source and no observer.
type KeygenOpts struct {
	Rand     io.Reader          // entropy source; defaults to crypto/rand.Reader
	Observer func(ev StepEvent) // optional progress hook, called after each stage
}

// GenerateKeyPair draws two independent 32-byte seeds, expands the public
// matrix, samples the bounded secret vectors, computes t = A*s1 + s2, and
// splits it into the published high bits and the retained low bits. The
// entire derivation is deterministic given the bytes read from opts.Rand,
// which is what makes fixed-seed testing possible. The only failure mode
// besides a misconfigured sponge is an exhausted entropy source; that error
// is wrapped and returned without retry.
func GenerateKeyPair(opts KeygenOpts) (*PublicKey, *SecretKey, error) {
	entropy := opts.Rand
	if entropy == nil {
		entropy = rand.Reader
	}
	step := func(s Step, start time.Time) {
		prof.Track(start, string(s))
		if opts.Observer != nil {
			opts.Observer(StepEvent{Step: s, Elapsed: time.Since(start)})
		}
	}

	start := time.Now()
	publicSeed := make([]byte, SeedBytes)
	secretSeed := make([]byte, SeedBytes)
	if _, err := io.ReadFull(entropy, publicSeed); err != nil {
		return nil, nil, fmt.Errorf("draw public seed: %w", err)
	}
	if _, err := io.ReadFull(entropy, secretSeed); err != nil {
		return nil, nil, fmt.Errorf("draw secret seed: %w", err)
	}
	step(StepSeedGen, start)

	start = time.Now()
	a, err := ExpandMatrix(publicSeed)
	if err != nil {
		return nil, nil, err
	}
	step(StepExpandMatrix, start)

	start = time.Now()
	var s1 VecL
	for i := 0; i < L; i++ {
		p, err := SampleSmall(secretSeed, uint16(i))
		if err != nil {
			return nil, nil, err
		}
		s1[i] = *p
	}
	step(StepSampleS1, start)

	start = time.Now()
	var s2 VecK
	for i := 0; i < K; i++ {
		p, err := SampleSmall(secretSeed, uint16(L+i))
		if err != nil {
			return nil, nil, err
		}
		s2[i] = *p
	}
	step(StepSampleS2, start)

	start = time.Now()
	t := ComputeT(a, &s1, &s2)
	step(StepComputeT, start)

	start = time.Now()
	t1, t0 := Power2RoundVec(t)
	step(StepSplitT, start)

	start = time.Now()
	pk := &PublicKey{Seed: publicSeed, T1: t1}
	sk := &SecretKey{Seed: publicSeed, S1: s1, S2: s2, T0: t0}
	step(StepPackage, start)
	dbg(os.Stderr, "[Keygen] done\n")
	return pk, sk, nil
}

// ComputeT evaluates the public value t = A*s1 + s2.
func ComputeT(a *Matrix, s1 *VecL, s2 *VecK) VecK {
	t := a.MulVec(s1)
	for i := 0; i < K; i++ {
		t[i] = t[i].Add(s2[i])
	}
	return t
}

// VerifyKeyPair regenerates A from the public seed and checks that
// t1*2^D + t0 reconstructs A*s1 + s2 at every coefficient, and that the
// two records carry the same seed. It exists to validate generated pairs;
// it is not a signature verifier.
func VerifyKeyPair(pk *PublicKey, sk *SecretKey) error {
	if pk == nil || sk == nil {
		return fmt.Errorf("nil key")
	}
	if len(pk.Seed) != SeedBytes || len(sk.Seed) != SeedBytes {
		return fmt.Errorf("seed length %d/%d, want %d", len(pk.Seed), len(sk.Seed), SeedBytes)
	}
	for i := range pk.Seed {
		if pk.Seed[i] != sk.Seed[i] {
			return fmt.Errorf("public and secret seeds differ at byte %d", i)
		}
	}
	a, err := ExpandMatrix(pk.Seed)
	if err != nil {
		return err
	}
	t := ComputeT(a, &sk.S1, &sk.S2)
	for i := 0; i < K; i++ {
		for k := 0; k < N; k++ {
			rec := int64(pk.T1[i][k])<<D + int64(sk.T0[i][k])
			if rec != int64(t[i][k]) {
				return fmt.Errorf("t[%d][%d]: t1*2^D+t0 = %d, want %d", i, k, rec, t[i][k])
			}
		}
	}
	return nil
}
