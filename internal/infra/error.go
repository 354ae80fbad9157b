package infra

import (
	"errors"
	"log/slog"

	"maya-connect/internal/pkg/errs"
)

type ErrorKind string

// Error is returned by every adapter in infra. The low-level cause stays
// reachable through Unwrap, so errors.As still finds e.g. *backend.APIError.
type Error struct {
	Kind ErrorKind
	msg  string
	err  error // low-level error, already prefixed with msg
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

func WrapErr(slogger *slog.Logger, kind ErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	switch kind {
	case KindNotFound, KindRejected, KindCacheMiss:
		slogger.Debug("Infra error: "+msg, logArgs...)
	default:
		slogger.Error("Infra error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return Error{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound    ErrorKind = "NOT_FOUND"
	KindRejected    ErrorKind = "REJECTED"
	KindUpstream    ErrorKind = "UPSTREAM_FAILURE"
	KindUnreachable ErrorKind = "UNREACHABLE"
	KindDecode      ErrorKind = "DECODE_FAILURE"
	KindCacheMiss   ErrorKind = "CACHE_MISS"
	KindCache       ErrorKind = "CACHE_FAILURE"
)
