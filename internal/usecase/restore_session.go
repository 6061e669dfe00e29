package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// RestoreSessionOutput contains the settled session state.
type RestoreSessionOutput struct {
	User          domain.User // Valid only when Authenticated is true
	Authenticated bool
}

// RestoreSession is the use case run once at process start to reconstruct
// the session from durable storage.
type RestoreSession struct {
	sessions *auth.Manager
}

// NewRestoreSession creates a new RestoreSession use case.
func NewRestoreSession(sessions *auth.Manager) *RestoreSession {
	return &RestoreSession{sessions: sessions}
}

// Execute reads durable storage and settles the session state.
func (uc *RestoreSession) Execute(_ context.Context) (*RestoreSessionOutput, error) {
	if err := uc.sessions.Restore(); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	out := &RestoreSessionOutput{
		Authenticated: uc.sessions.IsAuthenticated(),
	}
	if out.Authenticated {
		user, err := uc.sessions.User()
		if err != nil {
			return nil, fmt.Errorf("read user: %w", err)
		}
		out.User = user
	}
	return out, nil
}
