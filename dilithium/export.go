package dilithium

import (
	"fmt"

	"Dilithium-KeyGen/dilithium/keys"
)

// Record converts the public key to its persistable form.
func (pk *PublicKey) Record() *keys.PublicKey {
	return &keys.PublicKey{
		Version: keys.Version,
		N:       N,
		Q:       Q,
		Seed:    append([]byte(nil), pk.Seed...),
		T1:      vecKRows(pk.T1),
	}
}

// Record converts the secret key to its persistable form.
func (sk *SecretKey) Record() *keys.PrivateKey {
	return &keys.PrivateKey{
		Version: keys.Version,
		N:       N,
		Q:       Q,
		Seed:    append([]byte(nil), sk.Seed...),
		S1:      vecLRows(sk.S1),
		S2:      vecKRows(sk.S2),
		T0:      vecKRows(sk.T0),
	}
}

// PublicFromRecord rebuilds a PublicKey from a persisted record.
func PublicFromRecord(rec *keys.PublicKey) (*PublicKey, error) {
	if rec.N != N || rec.Q != Q {
		return nil, fmt.Errorf("record params N=%d Q=%d, want N=%d Q=%d", rec.N, rec.Q, N, Q)
	}
	if len(rec.Seed) != SeedBytes {
		return nil, fmt.Errorf("record seed length %d, want %d", len(rec.Seed), SeedBytes)
	}
	pk := &PublicKey{Seed: append([]byte(nil), rec.Seed...)}
	if err := rowsToVecK(rec.T1, &pk.T1); err != nil {
		return nil, fmt.Errorf("t1: %w", err)
	}
	return pk, nil
}

// SecretFromRecord rebuilds a SecretKey from a persisted record.
func SecretFromRecord(rec *keys.PrivateKey) (*SecretKey, error) {
	if rec.N != N || rec.Q != Q {
		return nil, fmt.Errorf("record params N=%d Q=%d, want N=%d Q=%d", rec.N, rec.Q, N, Q)
	}
	if len(rec.Seed) != SeedBytes {
		return nil, fmt.Errorf("record seed length %d, want %d", len(rec.Seed), SeedBytes)
	}
	sk := &SecretKey{Seed: append([]byte(nil), rec.Seed...)}
	if err := rowsToVecL(rec.S1, &sk.S1); err != nil {
		return nil, fmt.Errorf("s1: %w", err)
	}
	if err := rowsToVecK(rec.S2, &sk.S2); err != nil {
		return nil, fmt.Errorf("s2: %w", err)
	}
	if err := rowsToVecK(rec.T0, &sk.T0); err != nil {
		return nil, fmt.Errorf("t0: %w", err)
	}
	return sk, nil
}

func vecKRows(v VecK) [][]int32 {
	rows := make([][]int32, K)
	for i := range v {
		rows[i] = append([]int32(nil), v[i][:]...)
	}
	return rows
}

func vecLRows(v VecL) [][]int32 {
	rows := make([][]int32, L)
	for i := range v {
		rows[i] = append([]int32(nil), v[i][:]...)
	}
	return rows
}

func rowsToVecK(rows [][]int32, out *VecK) error {
	if len(rows) != K {
		return fmt.Errorf("%d rows, want %d", len(rows), K)
	}
	for i, row := range rows {
		if len(row) != N {
			return fmt.Errorf("row %d length %d, want %d", i, len(row), N)
		}
		copy(out[i][:], row)
	}
	return nil
}

func rowsToVecL(rows [][]int32, out *VecL) error {
	if len(rows) != L {
		return fmt.Errorf("%d rows, want %d", len(rows), L)
	}
	for i, row := range rows {
		if len(row) != N {
			return fmt.Errorf("row %d length %d, want %d", i, len(row), N)
		}
		copy(out[i][:], row)
	}
	return nil
}
