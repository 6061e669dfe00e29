// Package auth manages the locally authenticated user session.
//
// The Manager is an explicitly constructed service owned by the application
// container; nothing here is a package-level singleton. Its lifecycle is a
// small state machine: a fresh Manager is restoring until Restore has read
// durable storage, after which it is either anonymous or authenticated.
package auth

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// State is the session lifecycle state.
type State string

const (
	StateRestoring     State = "restoring"     // Durable storage not read yet
	StateAnonymous     State = "anonymous"     // No valid session
	StateAuthenticated State = "authenticated" // User record present
)

// Durable storage keys.
const (
	keyAuthenticated = "authenticated"
	keyUser          = "user"
)

// Manager holds the session state backed by durable storage.
type Manager struct {
	storage  domain.KeyValueStore
	onLogout func()
	user     domain.User
	state    State
	mu       sync.Mutex
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogoutHook registers a callback fired after a successful logout.
// The UI shell uses this to navigate back to its login surface.
func WithLogoutHook(fn func()) Option {
	return func(m *Manager) {
		m.onLogout = fn
	}
}

// NewManager creates a Manager in the restoring state. Restore must be
// called before any state accessor.
func NewManager(storage domain.KeyValueStore, opts ...Option) *Manager {
	m := &Manager{
		storage: storage,
		state:   StateRestoring,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Restore reads durable storage and settles the session state. A session
// is restored only when both the marker and a parseable user record are
// present; anything else yields the anonymous state.
func (m *Manager) Restore() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	flag, err := m.storage.Get(keyAuthenticated)
	if err != nil {
		return fmt.Errorf("read session marker: %w", err)
	}
	raw, err := m.storage.Get(keyUser)
	if err != nil {
		return fmt.Errorf("read user record: %w", err)
	}

	if flag != "true" || raw == "" {
		m.state = StateAnonymous
		return nil
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		// Corrupt user record: fall back to anonymous rather than failing.
		m.state = StateAnonymous
		return nil
	}

	m.user = user
	m.state = StateAuthenticated
	return nil
}

// Login writes the session to durable storage and transitions to
// authenticated. Logging in while already authenticated overwrites the
// user record.
func (m *Manager) Login(user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateRestoring {
		return domain.ErrNotRestored
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user record: %w", err)
	}
	if err := m.storage.Set(keyAuthenticated, "true"); err != nil {
		return fmt.Errorf("write session marker: %w", err)
	}
	if err := m.storage.Set(keyUser, string(raw)); err != nil {
		return fmt.Errorf("write user record: %w", err)
	}

	m.user = user
	m.state = StateAuthenticated
	return nil
}

// Logout clears durable storage and transitions to anonymous. Calling it
// while already anonymous is a safe no-op. The logout hook fires after the
// state settles.
func (m *Manager) Logout() error {
	m.mu.Lock()

	if m.state == StateRestoring {
		m.mu.Unlock()
		return domain.ErrNotRestored
	}

	if err := m.storage.Delete(keyAuthenticated); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("clear session marker: %w", err)
	}
	if err := m.storage.Delete(keyUser); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("clear user record: %w", err)
	}

	m.user = domain.User{}
	m.state = StateAnonymous
	hook := m.onLogout
	m.mu.Unlock()

	if hook != nil {
		hook()
	}
	return nil
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// IsAuthenticated returns true once a session is active.
func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

// User returns the authenticated user record.
func (m *Manager) User() (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateRestoring:
		return domain.User{}, domain.ErrNotRestored
	case StateAuthenticated:
		return m.user, nil
	default:
		return domain.User{}, domain.ErrNotAuthenticated
	}
}
