package driven

import (
	"context"

	"passkeep/internal/domain/model"
)

// MasterStore defines the driven port for the singleton master-password
// record.
type MasterStore interface {
	// Set stores or replaces the master record.
	Set(ctx context.Context, rec model.MasterRecord) error

	// Get retrieves the master record. Returns ErrNotFound on first run,
	// before any master password has been set.
	Get(ctx context.Context) (model.MasterRecord, error)
}
