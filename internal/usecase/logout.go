package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/auth"
)

// Logout is the use case for ending the current session.
type Logout struct {
	sessions *auth.Manager
}

// NewLogout creates a new Logout use case.
func NewLogout(sessions *auth.Manager) *Logout {
	return &Logout{sessions: sessions}
}

// Execute clears the session. Safe to call while anonymous.
func (uc *Logout) Execute(_ context.Context) error {
	if err := uc.sessions.Logout(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
