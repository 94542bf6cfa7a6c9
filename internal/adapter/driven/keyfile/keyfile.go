// Package keyfile persists the vault's symmetric encryption key to a local
// file. The key is generated once on first use and read-only afterwards.
package keyfile

import (
	"crypto/rand"
	"fmt"
	"os"
)

// KeySize is the symmetric key length in bytes (AES-256).
const KeySize = 32

// LoadOrCreate returns the key stored at path, generating and persisting a
// fresh random key on first use. The file is created with mode 0600 so only
// the owning user can read it.
func LoadOrCreate(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		if len(key) != KeySize {
			return nil, fmt.Errorf("key file %s: expected %d bytes, got %d", path, KeySize, len(key))
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	key = make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	if err := os.WriteFile(path, key, 0o600); err != nil {
		return nil, fmt.Errorf("write key file: %w", err)
	}
	return key, nil
}
