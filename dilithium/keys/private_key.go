package keys

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PrivateKey represents a secret key persisted to JSON: the shared seed,
// the small secret vectors, and the retained low bits t0.
type PrivateKey struct {
	Version string    `json:"version"`
	N       int       `json:"N"`
	Q       uint64    `json:"Q"`
	Seed    []byte    `json:"seed"`
	S1      [][]int32 `json:"s1"`
	S2      [][]int32 `json:"s2"`
	T0      [][]int32 `json:"t0"`
}

// SavePrivate writes the secret key to dir/private.json.
func SavePrivate(dir string, sk *PrivateKey) error {
	if sk == nil {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, "private.json"))
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(sk)
}

// LoadPrivate reads the secret key from dir/private.json.
func LoadPrivate(dir string) (*PrivateKey, error) {
	data, err := os.ReadFile(filepath.Join(dir, "private.json"))
	if err != nil {
		return nil, err
	}
	var sk PrivateKey
	if err := json.Unmarshal(data, &sk); err != nil {
		return nil, err
	}
	return &sk, nil
}
