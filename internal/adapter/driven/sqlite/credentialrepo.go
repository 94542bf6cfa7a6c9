package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"passkeep/internal/domain/model"
	"passkeep/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CredentialStore = (*CredentialRepo)(nil)

// CredentialRepo is the SQLite implementation of the CredentialStore port.
// Secrets are stored exactly as given; the blob in secret_encrypted is
// opaque to this layer.
type CredentialRepo struct {
	db *DB
}

// NewCredentialRepo creates a new CredentialRepo backed by the given DB.
func NewCredentialRepo(db *DB) *CredentialRepo {
	return &CredentialRepo{db: db}
}

// Upsert inserts the credential or replaces the record with the same name.
func (r *CredentialRepo) Upsert(ctx context.Context, name, login string, secret []byte) error {
	const query = `INSERT INTO credentials (name, login, secret_encrypted) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET login = excluded.login, secret_encrypted = excluded.secret_encrypted`

	if _, err := r.db.Conn().ExecContext(ctx, query, name, login, secret); err != nil {
		return fmt.Errorf("upsert credential %q: %w", name, err)
	}
	return nil
}

// Get retrieves the credential for the given name.
func (r *CredentialRepo) Get(ctx context.Context, name string) (model.Credential, error) {
	const query = `SELECT id, name, login, secret_encrypted FROM credentials WHERE name = ?`

	var cred model.Credential
	err := r.db.Conn().QueryRowContext(ctx, query, name).
		Scan(&cred.ID, &cred.Name, &cred.Login, &cred.Secret)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Credential{}, driven.ErrNotFound
	}
	if err != nil {
		return model.Credential{}, fmt.Errorf("get credential %q: %w", name, err)
	}
	return cred, nil
}

// List returns (name, login) summaries sorted by name ascending.
func (r *CredentialRepo) List(ctx context.Context) ([]model.CredentialSummary, error) {
	const query = `SELECT name, login FROM credentials ORDER BY name`

	rows, err := r.db.Conn().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	defer rows.Close()

	var summaries []model.CredentialSummary
	for rows.Next() {
		var s model.CredentialSummary
		if err := rows.Scan(&s.Name, &s.Login); err != nil {
			return nil, fmt.Errorf("scan credential: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credentials: %w", err)
	}

	return summaries, nil
}

// Delete removes the credential for the given name, if present.
func (r *CredentialRepo) Delete(ctx context.Context, name string) error {
	const query = `DELETE FROM credentials WHERE name = ?`

	if _, err := r.db.Conn().ExecContext(ctx, query, name); err != nil {
		return fmt.Errorf("delete credential %q: %w", name, err)
	}
	return nil
}
