// Package usermsg turns errors into the short messages shown next to a retry button.
package usermsg

import (
	"context"
	"errors"
	"net"
	"regexp"

	"maya-connect/internal/pkg/errs"
)

const (
	SessionExpired = "Your session has expired. Please sign in again."
	AccessDenied   = "Access denied."
	Unreachable    = "Unable to reach the server. Check your connection."
	Unknown        = "Something went wrong. Please try again."
)

// StatusCoder is implemented by errors that carry an HTTP status.
type StatusCoder interface {
	HTTPStatus() int
}

var statusPattern = regexp.MustCompile(`\bstatus (401|403)\b`)

// For maps 401 to the session message, 403 to access denied, network failures
// to the connectivity message and everything else to the error's own text.
func For(err error) string {
	if err == nil {
		return ""
	}

	switch Status(err) {
	case 401:
		return SessionExpired
	case 403:
		return AccessDenied
	}

	if IsUnreachable(err) {
		return Unreachable
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return Unknown
}

// Status reports the HTTP status carried by err, falling back to a
// "status 401" or "status 403" fragment in its text. Zero means none.
func Status(err error) int {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.HTTPStatus()
	}
	if errs.Is(err, errs.ErrSessionExpired) || errs.Is(err, errs.ErrUnauthenticated) || errs.Is(err, errs.ErrSessionRevoked) {
		return 401
	}
	if errs.Is(err, errs.ErrForbidden) {
		return 403
	}
	if m := statusPattern.FindStringSubmatch(err.Error()); m != nil {
		if m[1] == "401" {
			return 401
		}
		return 403
	}
	return 0
}

func IsUnreachable(err error) bool {
	if errs.Is(err, errs.ErrUnreachable) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
