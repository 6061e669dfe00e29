package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// mapKV is a minimal in-memory domain.KeyValueStore for auth tests.
type mapKV map[string]string

func (m mapKV) Get(key string) (string, error) { return m[key], nil }
func (m mapKV) Set(key, value string) error    { m[key] = value; return nil }
func (m mapKV) Delete(key string) error        { delete(m, key); return nil }

func restoredManager(t *testing.T, kv domain.KeyValueStore) *auth.Manager {
	t.Helper()
	m := auth.NewManager(kv)
	require.NoError(t, m.Restore())
	return m
}

func TestLogin_Execute_Success(t *testing.T) {
	kv := mapKV{}
	uc := NewLogin(restoredManager(t, kv))

	out, err := uc.Execute(context.Background(), LoginInput{Name: "Ann", Email: "a@x.com"})

	require.NoError(t, err)
	assert.Equal(t, domain.User{Name: "Ann", Email: "a@x.com"}, out.User)
	assert.Equal(t, "true", kv["authenticated"])
}

func TestLogin_Execute_Validation(t *testing.T) {
	uc := NewLogin(restoredManager(t, mapKV{}))

	_, err := uc.Execute(context.Background(), LoginInput{Email: "a@x.com"})
	assert.ErrorIs(t, err, domain.ErrNameRequired)

	_, err = uc.Execute(context.Background(), LoginInput{Name: "Ann"})
	assert.ErrorIs(t, err, domain.ErrEmailRequired)
}

func TestLogout_Execute(t *testing.T) {
	kv := mapKV{}
	manager := restoredManager(t, kv)
	require.NoError(t, manager.Login(domain.User{Name: "Ann", Email: "a@x.com"}))

	err := NewLogout(manager).Execute(context.Background())

	require.NoError(t, err)
	assert.False(t, manager.IsAuthenticated())
	assert.Empty(t, kv)
}

func TestRestoreSession_Execute_RoundTrip(t *testing.T) {
	kv := mapKV{}
	first := restoredManager(t, kv)
	require.NoError(t, first.Login(domain.User{Name: "Ann", Email: "a@x.com"}))

	// Simulated process restart.
	second := auth.NewManager(kv)
	out, err := NewRestoreSession(second).Execute(context.Background())

	require.NoError(t, err)
	assert.True(t, out.Authenticated)
	assert.Equal(t, domain.User{Name: "Ann", Email: "a@x.com"}, out.User)
}

func TestRestoreSession_Execute_Anonymous(t *testing.T) {
	out, err := NewRestoreSession(auth.NewManager(mapKV{})).Execute(context.Background())

	require.NoError(t, err)
	assert.False(t, out.Authenticated)
	assert.Equal(t, domain.User{}, out.User)
}
