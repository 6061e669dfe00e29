package sqlitekv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taskdeck.db")
	store, err := New(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestStore_SetAndGet(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Set("authenticated", "true"))

	got, err := store.Get("authenticated")
	require.NoError(t, err)
	assert.Equal(t, "true", got)
}

func TestStore_GetAbsentKey(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Get("missing")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_OverwriteAndDelete(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Set("user", "a"))
	require.NoError(t, store.Set("user", "b"))

	got, err := store.Get("user")
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	require.NoError(t, store.Delete("user"))
	got, err = store.Get("user")
	require.NoError(t, err)
	assert.Empty(t, got)

	// Deleting again is a no-op.
	assert.NoError(t, store.Delete("user"))
}

func TestStore_SurvivesReopen(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.Set("user", `{"name":"Ann"}`))
	require.NoError(t, store.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get("user")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Ann"}`, got)
}
