package auth

import (
	"errors"
	"time"

	"maya-connect/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmptyAccessToken   = errors.New("empty access token")
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// TokenPair is what the backend hands out on login. ExpiresAt is zero when the
// backend did not say; the access token's own exp claim is used instead.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

func NewTokenPair(access, refresh string, expiresAt time.Time) (TokenPair, error) {
	if access == "" {
		return TokenPair{}, ErrEmptyAccessToken
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: expiresAt}, nil
}
