package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// LoginInput contains the credentials for starting a session.
type LoginInput struct {
	Name  string
	Email string
}

// LoginOutput contains the result of logging in.
type LoginOutput struct {
	User domain.User
}

// Login is the use case for starting an authenticated session.
type Login struct {
	sessions *auth.Manager
}

// NewLogin creates a new Login use case.
func NewLogin(sessions *auth.Manager) *Login {
	return &Login{sessions: sessions}
}

// Execute validates the input and writes the session to durable storage.
func (uc *Login) Execute(_ context.Context, in LoginInput) (*LoginOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrNameRequired
	}
	if in.Email == "" {
		return nil, domain.ErrEmailRequired
	}

	user := domain.User{Name: in.Name, Email: in.Email}
	if err := uc.sessions.Login(user); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &LoginOutput{User: user}, nil
}
