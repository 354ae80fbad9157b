package qrsession

import (
	"context"
	"log/slog"

	"maya-connect/internal/domain/qr"
	"maya-connect/internal/domain/session"
	"maya-connect/internal/pkg/clock"
	"maya-connect/internal/pkg/config"
	"maya-connect/internal/pkg/errs"
)

// Service hands out QR controllers bound to member sessions.
type Service struct {
	api  QRAPI
	opts Options
}

func NewService(api QRAPI, cfg config.QRConfig, clk clock.Clock, logger *slog.Logger) (*Service, error) {
	renderer, err := qr.NewRenderer(cfg.RendererBaseURL, cfg.RendererSize)
	if err != nil {
		return nil, err
	}
	return &Service{
		api: api,
		opts: Options{
			Lead:     cfg.RefreshLead,
			Renderer: renderer,
			Clock:    clk,
			Logger:   logger,
		},
	}, nil
}

// Current loads the member's code once.
func (s *Service) Current(ctx context.Context, sess *session.Session, forceRefresh bool) (Snapshot, error) {
	return Fetch(ctx, NewSessionSource(s.api, sess), s.opts, forceRefresh)
}

// Open starts a refreshing controller that closes itself when sess is invalidated.
// The caller must Load it once and Close it when done.
func (s *Service) Open(sess *session.Session) *Controller {
	c := New(NewSessionSource(s.api, sess), s.opts)
	c.bindTo(sess)
	return c
}

// Export produces the share/print payload for the code currently valid.
func (s *Service) Export(ctx context.Context, sess *session.Session) (qr.Export, error) {
	snap, err := s.Current(ctx, sess, false)
	if err != nil {
		return qr.Export{}, err
	}
	if !snap.Displaying() || snap.ExpiresAt == nil {
		return qr.Export{}, errs.ErrQRUnavailable
	}
	tok, err := qr.NewToken(snap.Token, *snap.ExpiresAt)
	if err != nil {
		return qr.Export{}, errs.Mark(err, errs.ErrQRUnavailable)
	}
	return qr.NewExport(tok, s.opts.Renderer), nil
}
