package errs

import "errors"

// Sentinels the handlers map to statuses. Attach them with Mark so the
// original cause stays in logs.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrSessionExpired  = errors.New("session expired")
	ErrSessionRevoked  = errors.New("session revoked")
	ErrForbidden       = errors.New("forbidden")

	ErrQRUnavailable   = errors.New("qr code unavailable")
	ErrPartnerNotFound = errors.New("partner not found")

	ErrDomainValidation = errors.New("domain validation error")

	// ErrUnreachable marks transport failures: DNS, refused connections, timeouts.
	ErrUnreachable = errors.New("upstream unreachable")
)
