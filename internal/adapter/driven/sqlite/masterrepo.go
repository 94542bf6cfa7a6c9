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
var _ driven.MasterStore = (*MasterRepo)(nil)

// MasterRepo is the SQLite implementation of the MasterStore port. The
// master table holds at most one row, pinned to id = 1 by a CHECK
// constraint.
type MasterRepo struct {
	db *DB
}

// NewMasterRepo creates a new MasterRepo backed by the given DB.
func NewMasterRepo(db *DB) *MasterRepo {
	return &MasterRepo{db: db}
}

// Set stores or replaces the master record.
func (r *MasterRepo) Set(ctx context.Context, rec model.MasterRecord) error {
	const query = `INSERT OR REPLACE INTO master (id, password_hash, salt) VALUES (1, ?, ?)`

	if _, err := r.db.Conn().ExecContext(ctx, query, rec.Hash, rec.Salt); err != nil {
		return fmt.Errorf("set master record: %w", err)
	}
	return nil
}

// Get retrieves the master record.
func (r *MasterRepo) Get(ctx context.Context) (model.MasterRecord, error) {
	const query = `SELECT password_hash, salt FROM master WHERE id = 1`

	var rec model.MasterRecord
	err := r.db.Conn().QueryRowContext(ctx, query).Scan(&rec.Hash, &rec.Salt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.MasterRecord{}, driven.ErrNotFound
	}
	if err != nil {
		return model.MasterRecord{}, fmt.Errorf("get master record: %w", err)
	}
	return rec, nil
}
