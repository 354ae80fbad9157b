//go:build unit

package session_test

import (
	"testing"
	"time"

	"maya-connect/internal/domain/session"
	"maya-connect/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newSession(t *testing.T, token string, expiresAt time.Time) *session.Session {
	t.Helper()
	s, err := session.New(token, builder.NewUserBuilder().BuildProfile(), expiresAt)
	require.NoError(t, err)
	return s
}

func TestSession(t *testing.T) {
	t.Run("requires a token", func(t *testing.T) {
		_, err := session.New("", builder.NewUserBuilder().BuildProfile(), now)
		assert.ErrorIs(t, err, session.ErrEmptyToken)
	})

	t.Run("authenticated until expiry", func(t *testing.T) {
		s := newSession(t, "tok", now.Add(time.Hour))
		assert.True(t, s.IsAuthenticated(now))
		assert.False(t, s.IsAuthenticated(now.Add(time.Hour)))
	})

	t.Run("zero expiry never expires", func(t *testing.T) {
		s := newSession(t, "tok", time.Time{})
		assert.True(t, s.IsAuthenticated(now.AddDate(10, 0, 0)))
	})

	t.Run("invalidate clears accessors and runs listeners once", func(t *testing.T) {
		s := newSession(t, "tok", now.Add(time.Hour))
		calls := 0
		s.OnInvalidate(func() { calls++ })

		assert.True(t, s.Invalidate())
		assert.False(t, s.Invalidate())

		assert.Equal(t, 1, calls)
		assert.False(t, s.IsAuthenticated(now))
		assert.Empty(t, s.AccessToken())
		assert.Empty(t, s.CurrentUser().ID)

		select {
		case <-s.Done():
		default:
			t.Fatal("done channel not closed")
		}
	})

	t.Run("listener added after invalidation runs immediately", func(t *testing.T) {
		s := newSession(t, "tok", now.Add(time.Hour))
		s.Invalidate()

		called := false
		s.OnInvalidate(func() { called = true })
		assert.True(t, called)
		assert.Equal(t, 0, s.Listeners())
	})

	t.Run("unregistered listener does not run", func(t *testing.T) {
		s := newSession(t, "tok", now.Add(time.Hour))
		var kept, dropped int
		s.OnInvalidate(func() { kept++ })
		unregister := s.OnInvalidate(func() { dropped++ })
		require.Equal(t, 2, s.Listeners())

		unregister()
		unregister()
		assert.Equal(t, 1, s.Listeners())

		s.Invalidate()
		assert.Equal(t, 1, kept)
		assert.Equal(t, 0, dropped)
		assert.Equal(t, 0, s.Listeners())
	})
}

func TestRegistry(t *testing.T) {
	t.Run("attach shares the live session for a token", func(t *testing.T) {
		r := session.NewRegistry()
		first := r.Attach(newSession(t, "tok", now.Add(time.Hour)))
		second := r.Attach(newSession(t, "tok", now.Add(time.Hour)))

		assert.Same(t, first, second)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("invalidate by token removes the session", func(t *testing.T) {
		r := session.NewRegistry()
		s := r.Attach(newSession(t, "tok", now.Add(time.Hour)))

		assert.True(t, r.Invalidate("tok"))
		assert.False(t, s.IsAuthenticated(now))
		assert.Equal(t, 0, r.Len())
		assert.False(t, r.Invalidate("tok"))

		_, ok := r.Lookup("tok")
		assert.False(t, ok)
	})

	t.Run("a new login after logout gets a fresh session", func(t *testing.T) {
		r := session.NewRegistry()
		old := r.Attach(newSession(t, "tok", now.Add(time.Hour)))
		old.Invalidate()

		fresh := r.Attach(newSession(t, "tok", now.Add(time.Hour)))
		assert.NotSame(t, old, fresh)
		assert.True(t, fresh.IsAuthenticated(now))
	})
}
