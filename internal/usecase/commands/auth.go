package commands

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"maya-connect/internal/domain/auth"
	"maya-connect/internal/domain/session"
	"maya-connect/internal/domain/user"
	reqdto "maya-connect/internal/handler/dto/request"
	"maya-connect/internal/infra/backend"
	"maya-connect/internal/pkg/errs"
	"maya-connect/internal/usecase"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
)

type LoginResult struct {
	TokenPair auth.TokenPair
	User      user.Profile
	Session   *session.Session
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, s *session.Session) error
}

type authCommandsImpl struct {
	api      AuthAPI
	sessions usecase.SessionResolver
	logger   *slog.Logger
}

func NewAuthCommands(api AuthAPI, sessions usecase.SessionResolver, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		api:      api,
		sessions: sessions,
		logger:   logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.api.Login(ctx, credentials)
	if err != nil {
		switch backend.StatusOf(err) {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound:
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, err
	}

	sess, err := a.sessions.Resolve(ctx, pair.AccessToken)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	if pair.ExpiresAt.IsZero() {
		pair.ExpiresAt = sess.ExpiresAt()
	}

	profile, err := a.api.GetCurrentUser(ctx, pair.AccessToken)
	if err != nil {
		// The token claims are enough to render the home screen.
		a.logger.Warn("failed to load profile after login", "user_id", sess.CurrentUser().ID, "error", err.Error())
		profile = sess.CurrentUser()
	} else if profile.Role == "" {
		profile.Role = sess.CurrentUser().Role
	}

	return &LoginResult{
		TokenPair: pair,
		User:      profile,
		Session:   sess,
	}, nil
}

// Logout is the single sign-out path: the backend is told best effort, the
// session is always invalidated locally.
func (a *authCommandsImpl) Logout(ctx context.Context, s *session.Session) error {
	token := s.AccessToken()
	if token == "" {
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := a.api.Logout(callCtx, token); err != nil {
		a.logger.Warn("backend logout failed", "user_id", s.CurrentUser().ID, "error", err.Error())
	}

	return a.sessions.Revoke(ctx, s)
}
