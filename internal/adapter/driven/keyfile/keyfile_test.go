package keyfile

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreate_GeneratesKeyOnFirstUse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.key")

	key, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Len(t, key, KeySize)

	info, err := os.Stat(path)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestLoadOrCreate_LoadsExistingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.key")

	first, err := LoadOrCreate(path)
	require.NoError(t, err)

	second, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadOrCreate_RejectsWrongSizeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.key")
	require.NoError(t, os.WriteFile(path, []byte("short"), 0o600))

	_, err := LoadOrCreate(path)
	assert.Error(t, err)
}
