package application

import (
	"context"
	"fmt"

	"passkeep/internal/crypto"
	"passkeep/internal/domain/model"
	"passkeep/internal/domain/port/driven"
)

// VaultService coordinates the credential store and the cipher: secrets are
// encrypted before they reach storage and decrypted only on explicit
// retrieval. It depends on the port interface only, so it is testable
// without a real terminal or database file.
type VaultService struct {
	store  driven.CredentialStore
	cipher *crypto.Cipher
}

// NewVaultService creates a VaultService with the required dependencies.
func NewVaultService(store driven.CredentialStore, cipher *crypto.Cipher) *VaultService {
	return &VaultService{store: store, cipher: cipher}
}

// Add encrypts secret and stores the credential, replacing any existing
// record with the same name.
func (s *VaultService) Add(ctx context.Context, name, login, secret string) error {
	blob, err := s.cipher.Encrypt(secret)
	if err != nil {
		return fmt.Errorf("encrypt secret for %q: %w", name, err)
	}
	return s.store.Upsert(ctx, name, login, blob)
}

// Get retrieves and decrypts the credential for the given name. Returns
// driven.ErrNotFound for unknown names and a crypto.ErrDecrypt-wrapped
// error when the stored blob cannot be opened.
func (s *VaultService) Get(ctx context.Context, name string) (login, secret string, err error) {
	cred, err := s.store.Get(ctx, name)
	if err != nil {
		return "", "", err
	}

	secret, err = s.cipher.Decrypt(cred.Secret)
	if err != nil {
		return "", "", fmt.Errorf("credential %q: %w", name, err)
	}
	return cred.Login, secret, nil
}

// List returns (name, login) summaries sorted by name; secrets are never
// included.
func (s *VaultService) List(ctx context.Context) ([]model.CredentialSummary, error) {
	return s.store.List(ctx)
}

// Delete removes the credential for the given name. Unknown names are a
// no-op.
func (s *VaultService) Delete(ctx context.Context, name string) error {
	return s.store.Delete(ctx, name)
}
