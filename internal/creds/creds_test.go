package creds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemory()

	_, held := store.Get()
	assert.False(t, held)

	require.NoError(t, store.Set("tok-1"))
	token, held := store.Get()
	assert.True(t, held)
	assert.Equal(t, "tok-1", token)

	// Set overwrites unconditionally.
	require.NoError(t, store.Set("tok-2"))
	token, _ = store.Get()
	assert.Equal(t, "tok-2", token)

	require.NoError(t, store.Clear())
	_, held = store.Get()
	assert.False(t, held)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	store, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("tok-persisted"))

	// A second store over the same path restores the credential, the
	// way a page reload restores the browser session.
	reopened, err := NewFile(path)
	require.NoError(t, err)
	token, held := reopened.Get()
	require.True(t, held)
	assert.Equal(t, "tok-persisted", token)
}

func TestFileStoreClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	store, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("tok"))
	require.NoError(t, store.Clear())

	_, held := store.Get()
	assert.False(t, held)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	reopened, err := NewFile(path)
	require.NoError(t, err)
	_, held = reopened.Get()
	assert.False(t, held)
}

func TestFileStoreTamperedFileRestoresEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	store, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("tok"))

	require.NoError(t, os.WriteFile(path, []byte("edited by hand"), 0o600))

	reopened, err := NewFile(path)
	require.NoError(t, err)
	_, held := reopened.Get()
	assert.False(t, held, "a tampered credential file means no session")
}

func TestFileStoreForeignKeyRestoresEmpty(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	storeA, err := NewFile(filepath.Join(dirA, "token"))
	require.NoError(t, err)
	require.NoError(t, storeA.Set("tok"))

	// Copy the token file but not its signing key.
	raw, err := os.ReadFile(filepath.Join(dirA, "token"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dirB, "token"), raw, 0o600))

	storeB, err := NewFile(filepath.Join(dirB, "token"))
	require.NoError(t, err)
	_, held := storeB.Get()
	assert.False(t, held)
}
