package commands

import (
	"context"

	"maya-connect/internal/domain/auth"
	"maya-connect/internal/domain/user"
	"maya-connect/internal/infra/backend"
)

// AuthAPI is the slice of the backend client the auth commands use.
type AuthAPI interface {
	Login(ctx context.Context, credentials auth.Credentials) (auth.TokenPair, error)
	GetCurrentUser(ctx context.Context, token string) (user.Profile, error)
	Logout(ctx context.Context, token string) error
}

type RegistrationAPI interface {
	Register(ctx context.Context, req backend.RegisterRequest) (user.Profile, error)
}
