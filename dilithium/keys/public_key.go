// Package keys persists generated key pairs as JSON records, one file per
// key, in the style version/params/coefficients.
package keys

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const Version = "dilithium-keygen/1"

// PublicKey represents a public key persisted to JSON: the matrix seed and
// the high bits t1 as K rows of N coefficients.
type PublicKey struct {
	Version string    `json:"version"`
	N       int       `json:"N"`
	Q       uint64    `json:"Q"`
	Seed    []byte    `json:"seed"`
	T1      [][]int32 `json:"t1"`
}

// SavePublic writes the public key to dir/public.json.
func SavePublic(dir string, pk *PublicKey) error {
	if pk == nil {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, "public.json"))
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(pk)
}

// LoadPublic reads the public key from dir/public.json.
func LoadPublic(dir string) (*PublicKey, error) {
	data, err := os.ReadFile(filepath.Join(dir, "public.json"))
	if err != nil {
		return nil, err
	}
	var pk PublicKey
	if err := json.Unmarshal(data, &pk); err != nil {
		return nil, err
	}
	return &pk, nil
}
