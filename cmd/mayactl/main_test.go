//go:build unit

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"maya-connect/internal/domain/qr"
	"maya-connect/internal/domain/session"
	"maya-connect/internal/pkg/clock"
	"maya-connect/internal/pkg/errs"
	"maya-connect/internal/pkg/usermsg"
	"maya-connect/internal/usecase/qrsession"
	"maya-connect/tests/common/builder"
	qrsessionmock "maya-connect/tests/mock/qrsession"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

type WatchTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	source   *qrsessionmock.MockSource
	clock    *clock.MockClock
	app      *app
	ctrl     *qrsession.Controller
	sess     *session.Session
	out      *bytes.Buffer
}

func (s *WatchTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.mockCtrl = gomock.NewController(s.T())
	s.source = qrsessionmock.NewMockSource(s.mockCtrl)
	s.clock = clock.NewMockClock(t0)
	s.app = &app{logger: logger, clock: s.clock}
	s.ctrl = qrsession.New(s.source, qrsession.Options{Clock: s.clock, Logger: logger})
	s.out = &bytes.Buffer{}

	sess, err := session.New("access-token", builder.NewUserBuilder().BuildProfile(), t0.Add(time.Hour))
	s.Require().NoError(err)
	s.sess = sess
}

func (s *WatchTestSuite) TearDownTest() {
	s.ctrl.Close()
	s.mockCtrl.Finish()
}

func TestWatchSuite(t *testing.T) {
	suite.Run(t, new(WatchTestSuite))
}

func (s *WatchTestSuite) start(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() { done <- s.app.watch(ctx, s.out, s.ctrl, s.sess, false) }()
	return done
}

func (s *WatchTestSuite) wait(done <-chan error) error {
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		s.FailNow("watch did not return")
		return nil
	}
}

func (s *WatchTestSuite) code(value string, expiresAt time.Time) qr.CodeResponse {
	tok, err := qr.NewToken(value, expiresAt)
	s.Require().NoError(err)
	return qr.CodeResponse{Token: tok}
}

func (s *WatchTestSuite) TestExitsWhenSignInIsNeeded() {
	s.source.EXPECT().GetCurrentQrCode(gomock.Any()).Return(qr.CodeResponse{}, errs.ErrSessionExpired)
	s.source.EXPECT().IssueQrToken(gomock.Any(), false).Return(qr.Token{}, errs.ErrSessionExpired)

	err := s.wait(s.start(context.Background()))

	s.True(errs.Is(err, errs.ErrSessionExpired), "got %v", err)
	s.Equal(usermsg.SessionExpired, usermsg.For(err))
	s.Contains(s.out.String(), "error:   "+usermsg.SessionExpired)
}

func (s *WatchTestSuite) TestRetriesTransientFailure() {
	unreachable := errs.Mark(errs.New("dial tcp: connection refused"), errs.ErrUnreachable)
	gomock.InOrder(
		s.source.EXPECT().GetCurrentQrCode(gomock.Any()).Return(qr.CodeResponse{}, unreachable),
		s.source.EXPECT().IssueQrToken(gomock.Any(), false).Return(qr.Token{}, unreachable),
		s.source.EXPECT().GetCurrentQrCode(gomock.Any()).Return(s.code("tok-2", t0.Add(2*time.Hour)), nil),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := s.start(ctx)

	s.Require().Eventually(func() bool {
		return len(s.clock.Pending()) == 1
	}, time.Second, 5*time.Millisecond, "retry not armed")

	s.clock.Add(retryDelay)

	s.Require().Eventually(func() bool {
		return s.ctrl.Snapshot().State == qrsession.StateDisplaying
	}, time.Second, 5*time.Millisecond)

	cancel()
	s.NoError(s.wait(done))
	s.Contains(s.out.String(), "error:   "+usermsg.Unreachable)
}

func (s *WatchTestSuite) TestEndsWhenSessionExpires() {
	s.source.EXPECT().GetCurrentQrCode(gomock.Any()).Return(s.code("tok", t0.Add(2*time.Hour)), nil)
	expireOnDeadline(s.clock, s.sess)

	done := s.start(context.Background())
	s.Require().Eventually(func() bool {
		return s.ctrl.Snapshot().State == qrsession.StateDisplaying
	}, time.Second, 5*time.Millisecond)

	s.clock.Add(time.Hour)

	err := s.wait(done)
	s.True(errs.Is(err, errs.ErrSessionExpired), "got %v", err)
}

func TestExpireOnDeadline(t *testing.T) {
	profile := builder.NewUserBuilder().BuildProfile()

	t.Run("invalidates at the stored expiry", func(t *testing.T) {
		clk := clock.NewMockClock(t0)
		sess, err := session.New("tok", profile, t0.Add(time.Minute))
		require.NoError(t, err)

		expireOnDeadline(clk, sess)
		clk.Add(59 * time.Second)
		assert.True(t, sess.IsAuthenticated(clk.Now()))

		clk.Add(time.Second)
		select {
		case <-sess.Done():
		default:
			t.Fatal("session not invalidated at expiry")
		}
	})

	t.Run("no expiry arms nothing", func(t *testing.T) {
		clk := clock.NewMockClock(t0)
		sess, err := session.New("tok", profile, time.Time{})
		require.NoError(t, err)

		expireOnDeadline(clk, sess)
		assert.Empty(t, clk.Pending())
	})

	t.Run("manual sign-out stops the timer", func(t *testing.T) {
		clk := clock.NewMockClock(t0)
		sess, err := session.New("tok", profile, t0.Add(time.Minute))
		require.NoError(t, err)

		expireOnDeadline(clk, sess)
		sess.Invalidate()
		assert.Empty(t, clk.Pending())
	})
}
