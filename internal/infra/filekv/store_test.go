package filekv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetAndGet(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, store.Set("authenticated", "true"))

	got, err := store.Get("authenticated")
	require.NoError(t, err)
	assert.Equal(t, "true", got)
}

func TestStore_GetAbsentKey(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "session.json"))

	got, err := store.Get("missing")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_Overwrite(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, store.Set("user", `{"name":"Ann"}`))
	require.NoError(t, store.Set("user", `{"name":"Bob"}`))

	got, err := store.Get("user")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Bob"}`, got)
}

func TestStore_Delete(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, store.Set("authenticated", "true"))
	require.NoError(t, store.Delete("authenticated"))

	got, err := store.Get("authenticated")
	require.NoError(t, err)
	assert.Empty(t, got)

	// Deleting again is a no-op.
	assert.NoError(t, store.Delete("authenticated"))
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first := New(path)
	require.NoError(t, first.Set("user", `{"name":"Ann","email":"a@x.com"}`))

	// Simulated process restart: a fresh Store over the same file.
	second := New(path)
	got, err := second.Get("user")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Ann","email":"a@x.com"}`, got)
}

func TestStore_RejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := New(path)
	_, err := store.Get("user")
	assert.Error(t, err)
}
