package driven

import (
	"context"
	"errors"

	"passkeep/internal/domain/model"
)

// ErrNotFound is returned by lookups for names with no stored record.
var ErrNotFound = errors.New("not found")

// CredentialStore defines the driven port for credential persistence.
// Secrets arrive already encrypted and are stored as opaque blobs;
// encryption and decryption happen above this boundary.
type CredentialStore interface {
	// Upsert inserts the credential or replaces the existing record with the
	// same name. The write is committed durably before Upsert returns.
	Upsert(ctx context.Context, name, login string, secret []byte) error

	// Get retrieves the credential for the given name.
	// Returns ErrNotFound if no record exists.
	Get(ctx context.Context, name string) (model.Credential, error)

	// List returns a (name, login) summary for every stored credential,
	// sorted by name ascending.
	List(ctx context.Context) ([]model.CredentialSummary, error)

	// Delete removes the credential for the given name. Deleting a name
	// that does not exist is not an error.
	Delete(ctx context.Context, name string) error
}
