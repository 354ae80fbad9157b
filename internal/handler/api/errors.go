package api

import (
	"net/http"

	"maya-connect/internal/domain/session"
	"maya-connect/internal/handler/httperr"
	"maya-connect/internal/handler/middleware"
	"maya-connect/internal/infra"
	"maya-connect/internal/infra/backend"
	"maya-connect/internal/pkg/errs"
	"maya-connect/internal/pkg/usermsg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// abortWithError maps usecase and backend errors onto a status and a message
// the app can show as is. fallback is used when nothing more specific applies.
func abortWithError(c *gin.Context, err error, fallback string) {
	status, msg := http.StatusInternalServerError, fallback

	switch code := usermsg.Status(err); {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		status, msg = code, usermsg.For(err)
	case usermsg.IsUnreachable(err):
		status, msg = http.StatusServiceUnavailable, usermsg.Unreachable
	case errs.Is(err, errs.ErrPartnerNotFound) || infra.IsKind(err, infra.KindNotFound):
		status, msg = http.StatusNotFound, "Not found"
	case errs.Is(err, errs.ErrDomainValidation):
		status, msg = http.StatusBadRequest, errors.UnwrapAll(err).Error()
	case code >= 400 && code < 500:
		status = code
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			if m := apiErr.Message(); m != "" {
				msg = m
			}
		}
	case infra.IsKind(err, infra.KindUpstream) || infra.IsKind(err, infra.KindDecode):
		status = http.StatusBadGateway
	}

	httperr.AbortWithError(c, status, err, msg, nil)
}

func requireSession(c *gin.Context) (*session.Session, bool) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, usermsg.SessionExpired, nil)
		return nil, false
	}
	return s, true
}
