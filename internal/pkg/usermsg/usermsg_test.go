//go:build unit

package usermsg_test

import (
	"context"
	"errors"
	"net"
	"testing"

	"maya-connect/internal/pkg/errs"
	"maya-connect/internal/pkg/usermsg"

	"github.com/stretchr/testify/assert"
)

type statusErr int

func (e statusErr) Error() string   { return "upstream said no" }
func (e statusErr) HTTPStatus() int { return int(e) }

func TestFor(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: ""},
		{name: "typed 401", err: statusErr(401), expected: usermsg.SessionExpired},
		{name: "typed 403", err: statusErr(403), expected: usermsg.AccessDenied},
		{name: "wrapped typed 401", err: errs.Wrap(statusErr(401), "get current qr code"), expected: usermsg.SessionExpired},
		{name: "status in message 401", err: errors.New("request failed with status 401"), expected: usermsg.SessionExpired},
		{name: "status in message 403", err: errors.New("status 403: forbidden"), expected: usermsg.AccessDenied},
		{name: "status 4010 is not 401", err: errors.New("status 4010"), expected: "status 4010"},
		{name: "revoked session", err: errs.Mark(errors.New("logged out"), errs.ErrSessionRevoked), expected: usermsg.SessionExpired},
		{name: "marked unreachable", err: errs.Mark(errors.New("dial tcp"), errs.ErrUnreachable), expected: usermsg.Unreachable},
		{name: "deadline", err: errs.Wrap(context.DeadlineExceeded, "issue token"), expected: usermsg.Unreachable},
		{name: "net error", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, expected: usermsg.Unreachable},
		{name: "typed 500 keeps raw message", err: statusErr(500), expected: "upstream said no"},
		{name: "anything else is raw", err: errors.New("QR service is down"), expected: "QR service is down"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, usermsg.For(tc.err))
		})
	}
}
