package qrsession

import (
	"context"

	"maya-connect/internal/domain/qr"
	"maya-connect/internal/domain/session"
	"maya-connect/internal/pkg/errs"
)

// Source is the QR backend as seen by one display session.
type Source interface {
	GetCurrentQrCode(ctx context.Context) (qr.CodeResponse, error)
	IssueQrToken(ctx context.Context, forceRefresh bool) (qr.Token, error)
}

// QRAPI is the token-scoped backend client.
type QRAPI interface {
	GetCurrentQrCode(ctx context.Context, token string) (qr.CodeResponse, error)
	IssueQrToken(ctx context.Context, token string, forceRefresh bool) (qr.Token, error)
}

type sessionSource struct {
	api  QRAPI
	sess *session.Session
}

// NewSessionSource binds api to sess. Once sess is invalidated every call
// fails with errs.ErrSessionRevoked without reaching the backend.
func NewSessionSource(api QRAPI, sess *session.Session) Source {
	return &sessionSource{api: api, sess: sess}
}

func (s *sessionSource) GetCurrentQrCode(ctx context.Context) (qr.CodeResponse, error) {
	token := s.sess.AccessToken()
	if token == "" {
		return qr.CodeResponse{}, errs.ErrSessionRevoked
	}
	return s.api.GetCurrentQrCode(ctx, token)
}

func (s *sessionSource) IssueQrToken(ctx context.Context, forceRefresh bool) (qr.Token, error) {
	token := s.sess.AccessToken()
	if token == "" {
		return qr.Token{}, errs.ErrSessionRevoked
	}
	return s.api.IssueQrToken(ctx, token, forceRefresh)
}
