package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passkeep/internal/domain/model"
	"passkeep/internal/domain/port/driven"
)

func TestMasterRepo_GetBeforeSet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMasterRepo(db)

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, driven.ErrNotFound)
}

func TestMasterRepo_SetAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMasterRepo(db)
	ctx := context.Background()

	err := repo.Set(ctx, model.MasterRecord{Hash: "abcd", Salt: "1234"})
	require.NoError(t, err)

	rec, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abcd", rec.Hash)
	assert.Equal(t, "1234", rec.Salt)
}

func TestMasterRepo_SetReplacesSingleton(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMasterRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, model.MasterRecord{Hash: "old", Salt: "s1"}))
	require.NoError(t, repo.Set(ctx, model.MasterRecord{Hash: "new", Salt: "s2"}))

	rec, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", rec.Hash)
	assert.Equal(t, "s2", rec.Salt)

	var count int
	err = db.Conn().QueryRowContext(ctx, `SELECT COUNT(*) FROM master`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
