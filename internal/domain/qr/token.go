package qr

import (
	"errors"
	"strings"
	"time"
)

// DefaultRefreshLead is how long before expiry a displayed token gets replaced.
const DefaultRefreshLead = 60 * time.Second

var (
	ErrEmptyToken      = errors.New("qr token is empty")
	ErrMissingExpiry   = errors.New("qr token has no expiry")
	ErrInvalidRenderer = errors.New("invalid qr renderer configuration")
)

// Token is an opaque bearer credential encoded into the member QR code.
// A token is never mutated; a refresh yields a new Token.
type Token struct {
	value     string
	expiresAt time.Time
}

func NewToken(value string, expiresAt time.Time) (Token, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Token{}, ErrEmptyToken
	}
	if expiresAt.IsZero() {
		return Token{}, ErrMissingExpiry
	}
	return Token{value: value, expiresAt: expiresAt}, nil
}

func (t Token) Value() string        { return t.value }
func (t Token) ExpiresAt() time.Time { return t.expiresAt }
func (t Token) IsZero() bool         { return t.value == "" }

func (t Token) ExpiredAt(now time.Time) bool {
	return !now.Before(t.expiresAt)
}

// RefreshDelay is the wait before a token must be replaced: expiresAt - now - lead,
// floored at zero. Zero means the token is already inside the lead window.
func (t Token) RefreshDelay(now time.Time, lead time.Duration) time.Duration {
	return RefreshDelay(t.expiresAt, now, lead)
}

func RefreshDelay(expiresAt, now time.Time, lead time.Duration) time.Duration {
	d := expiresAt.Sub(now) - lead
	if d < 0 {
		return 0
	}
	return d
}

// CodeResponse is the payload of the "current QR" endpoint. Image fields are optional.
type CodeResponse struct {
	Token       Token
	ImageBase64 string
	QRCodeURL   string
}
