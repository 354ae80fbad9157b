package queries

import (
	"context"
	"net/http"

	"maya-connect/internal/domain/session"
	"maya-connect/internal/domain/user"
	"maya-connect/internal/infra/backend"
	"maya-connect/internal/pkg/errs"
)

type UserReadStore interface {
	GetCurrentUser(ctx context.Context, token string) (user.Profile, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, s *session.Session) (user.Profile, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

// GetCurrentUser asks the backend for the profile. A 401 means the backend no
// longer honours the token, so the session is invalidated on the spot.
func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, s *session.Session) (user.Profile, error) {
	token := s.AccessToken()
	if token == "" {
		return user.Profile{}, errs.ErrSessionRevoked
	}

	profile, err := q.readStore.GetCurrentUser(ctx, token)
	if err != nil {
		if backend.StatusOf(err) == http.StatusUnauthorized {
			s.Invalidate()
			return user.Profile{}, errs.Mark(err, errs.ErrSessionExpired)
		}
		return user.Profile{}, err
	}
	if profile.Role == "" {
		profile.Role = s.CurrentUser().Role
	}
	return profile, nil
}
