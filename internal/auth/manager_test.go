package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// mockKV is a test double for domain.KeyValueStore.
type mockKV struct {
	data   map[string]string
	getErr error
}

func newMockKV() *mockKV {
	return &mockKV{data: make(map[string]string)}
}

func (m *mockKV) Get(key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	return m.data[key], nil
}

func (m *mockKV) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *mockKV) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func TestManager_StartsRestoring(t *testing.T) {
	m := NewManager(newMockKV())

	assert.Equal(t, StateRestoring, m.State())

	_, err := m.User()
	assert.ErrorIs(t, err, domain.ErrNotRestored)
	assert.ErrorIs(t, m.Login(domain.User{Name: "Ann"}), domain.ErrNotRestored)
	assert.ErrorIs(t, m.Logout(), domain.ErrNotRestored)
}

func TestManager_Restore_EmptyStorage(t *testing.T) {
	m := NewManager(newMockKV())

	require.NoError(t, m.Restore())

	assert.Equal(t, StateAnonymous, m.State())
	assert.False(t, m.IsAuthenticated())
}

func TestManager_Restore_ValidSession(t *testing.T) {
	kv := newMockKV()
	kv.data["authenticated"] = "true"
	kv.data["user"] = `{"name":"Ann","email":"a@x.com"}`

	m := NewManager(kv)
	require.NoError(t, m.Restore())

	assert.Equal(t, StateAuthenticated, m.State())
	user, err := m.User()
	require.NoError(t, err)
	assert.Equal(t, domain.User{Name: "Ann", Email: "a@x.com"}, user)
}

func TestManager_Restore_MarkerWithoutUser(t *testing.T) {
	kv := newMockKV()
	kv.data["authenticated"] = "true"

	m := NewManager(kv)
	require.NoError(t, m.Restore())

	assert.Equal(t, StateAnonymous, m.State())
}

func TestManager_Restore_CorruptUserRecord(t *testing.T) {
	kv := newMockKV()
	kv.data["authenticated"] = "true"
	kv.data["user"] = "{not json"

	m := NewManager(kv)
	require.NoError(t, m.Restore())

	assert.Equal(t, StateAnonymous, m.State())
}

func TestManager_LoginPersistsAndRestores(t *testing.T) {
	kv := newMockKV()
	m := NewManager(kv)
	require.NoError(t, m.Restore())

	require.NoError(t, m.Login(domain.User{Name: "Ann", Email: "a@x.com"}))
	assert.True(t, m.IsAuthenticated())

	// Simulated process restart over the same storage.
	restarted := NewManager(kv)
	require.NoError(t, restarted.Restore())

	assert.Equal(t, StateAuthenticated, restarted.State())
	user, err := restarted.User()
	require.NoError(t, err)
	assert.Equal(t, domain.User{Name: "Ann", Email: "a@x.com"}, user)
}

func TestManager_LoginOverwritesExistingUser(t *testing.T) {
	m := NewManager(newMockKV())
	require.NoError(t, m.Restore())

	require.NoError(t, m.Login(domain.User{Name: "Ann", Email: "a@x.com"}))
	require.NoError(t, m.Login(domain.User{Name: "Bob", Email: "b@x.com"}))

	user, err := m.User()
	require.NoError(t, err)
	assert.Equal(t, "Bob", user.Name)
}

func TestManager_Logout(t *testing.T) {
	kv := newMockKV()
	navigated := false
	m := NewManager(kv, WithLogoutHook(func() { navigated = true }))
	require.NoError(t, m.Restore())
	require.NoError(t, m.Login(domain.User{Name: "Ann"}))

	require.NoError(t, m.Logout())

	assert.Equal(t, StateAnonymous, m.State())
	assert.True(t, navigated)
	assert.Empty(t, kv.data)

	_, err := m.User()
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestManager_LogoutFromAnonymousIsNoOp(t *testing.T) {
	m := NewManager(newMockKV())
	require.NoError(t, m.Restore())

	assert.NoError(t, m.Logout())
	assert.Equal(t, StateAnonymous, m.State())
}

func TestManager_Restore_StorageError(t *testing.T) {
	kv := newMockKV()
	kv.getErr = assert.AnError

	m := NewManager(kv)

	require.Error(t, m.Restore())
	assert.Equal(t, StateRestoring, m.State())
}
