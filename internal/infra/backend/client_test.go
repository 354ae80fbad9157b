//go:build unit

package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"maya-connect/internal/domain/auth"
	"maya-connect/internal/infra"
	"maya-connect/internal/infra/backend"
	"maya-connect/internal/pkg/config"
	"maya-connect/internal/pkg/errs"
	"maya-connect/internal/pkg/usermsg"

	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	mux    *http.ServeMux
	server *httptest.Server
	client *backend.Client
	ctx    context.Context
}

func (s *ClientTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.client = backend.New(config.BackendConfig{BaseURL: s.server.URL + "/", Timeout: time.Second},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.ctx = context.Background()
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	s.NoError(json.NewEncoder(w).Encode(body))
}

func (s *ClientTestSuite) TestLogin() {
	s.mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		s.NoError(json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "Abc12345" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
			"token":        "access",
			"refreshToken": "refresh",
			"expiresAt":    "2026-03-01T13:00:00Z",
		}})
	})

	s.Run("success: unwraps nested token pair", func() {
		creds, err := auth.NewCredentials("amina@example.com", "Abc12345")
		s.Require().NoError(err)

		pair, err := s.client.Login(s.ctx, creds)
		s.Require().NoError(err)
		s.Equal("access", pair.AccessToken)
		s.Equal("refresh", pair.RefreshToken)
		s.Equal(time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC), pair.ExpiresAt)
	})

	s.Run("error: 401 is an APIError with status in the message", func() {
		creds, err := auth.NewCredentials("amina@example.com", "wrong")
		s.Require().NoError(err)

		_, err = s.client.Login(s.ctx, creds)
		s.Require().Error(err)

		var apiErr *backend.APIError
		s.Require().True(errors.As(err, &apiErr))
		s.Equal(http.StatusUnauthorized, apiErr.StatusCode)
		s.Equal("Invalid credentials", apiErr.Message())
		s.Contains(err.Error(), "status 401")
		s.True(infra.IsKind(err, infra.KindRejected))
		s.Equal(usermsg.SessionExpired, usermsg.For(err))
	})
}

func (s *ClientTestSuite) TestQrCodes() {
	s.mux.HandleFunc("GET /api/qrcodes/current", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Bearer member-token", r.Header.Get("Authorization"))
		s.writeJSON(w, http.StatusOK, map[string]any{
			"token":       "qr-123",
			"expiresAt":   "2026-03-01T12:05:00Z",
			"imageBase64": "iVBORw0KGgo=",
		})
	})
	s.mux.HandleFunc("POST /api/qrcodes/issue-token", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]bool
		s.NoError(json.NewDecoder(r.Body).Decode(&body))
		s.True(body["forceRefresh"])
		s.writeJSON(w, http.StatusOK, map[string]any{"token": "qr-456", "expiresAt": "2026-03-01T12:10:00Z"})
	})

	s.Run("current code with inline image", func() {
		resp, err := s.client.GetCurrentQrCode(s.ctx, "member-token")
		s.Require().NoError(err)
		s.Equal("qr-123", resp.Token.Value())
		s.Equal("iVBORw0KGgo=", resp.ImageBase64)
		s.Empty(resp.QRCodeURL)
	})

	s.Run("issue token sends forceRefresh", func() {
		tok, err := s.client.IssueQrToken(s.ctx, "member-token", true)
		s.Require().NoError(err)
		s.Equal("qr-456", tok.Value())
		s.Equal(time.Date(2026, 3, 1, 12, 10, 0, 0, time.UTC), tok.ExpiresAt())
	})
}

func (s *ClientTestSuite) TestQrCodes_MissingExpiry() {
	s.mux.HandleFunc("GET /api/qrcodes/current", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]any{"token": "qr-123"})
	})

	_, err := s.client.GetCurrentQrCode(s.ctx, "member-token")
	s.Error(err)
}

func (s *ClientTestSuite) TestSearchPartners() {
	s.mux.HandleFunc("GET /api/partners/search", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		s.Equal("48.8566", q.Get("latitude"))
		s.Equal("2.3522", q.Get("longitude"))
		s.Equal("25", q.Get("radiusKm"))
		s.Equal("1", q.Get("page"))
		s.Equal("50", q.Get("pageSize"))
		s.writeJSON(w, http.StatusOK, map[string]any{
			"items":      []any{map[string]any{"id": "p-1"}, map[string]any{"id": "p-2"}},
			"totalCount": 12,
		})
	})
	s.mux.HandleFunc("GET /api/stores/search", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, []any{map[string]any{"id": "s-1"}})
	})

	page, err := s.client.SearchPartners(s.ctx, "t", backend.SearchParams{
		Latitude: 48.8566, Longitude: 2.3522, RadiusKm: 25, Page: 0, PageSize: 50,
	})
	s.Require().NoError(err)
	s.Len(page.Items, 2)
	s.Equal(12, page.TotalCount)

	stores, err := s.client.SearchStores(s.ctx, "t", backend.SearchParams{RadiusKm: 5, PageSize: 10})
	s.Require().NoError(err)
	s.Equal(1, stores.TotalCount)
	s.Equal("s-1", stores.Items[0]["id"])
}

func (s *ClientTestSuite) TestGetPartner_NotFound() {
	s.mux.HandleFunc("GET /api/partners/{id}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := s.client.GetPartner(s.ctx, "t", "missing")
	s.True(infra.IsKind(err, infra.KindNotFound))
	s.Equal(http.StatusNotFound, backend.StatusOf(err))
}

func (s *ClientTestSuite) TestTransactions() {
	s.mux.HandleFunc("GET /api/transactions/user/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("u-1", r.PathValue("id"))
		s.Equal("2", r.URL.Query().Get("page"))
		s.writeJSON(w, http.StatusOK, map[string]any{"data": []any{map[string]any{"id": "tx-1"}}, "total": 21})
	})

	page, err := s.client.GetUserTransactions(s.ctx, "t", "u-1", 2, 20)
	s.Require().NoError(err)
	s.Len(page.Items, 1)
	s.Equal(21, page.TotalCount)
}

func (s *ClientTestSuite) TestSubscriptions() {
	s.Run("has active accepts a bare boolean", func() {
		s.mux.HandleFunc("GET /api/subscriptions/has-active", func(w http.ResponseWriter, r *http.Request) {
			s.writeJSON(w, http.StatusOK, true)
		})
		active, err := s.client.HasActiveSubscription(s.ctx, "t")
		s.Require().NoError(err)
		s.True(active)
	})

	s.Run("404 means no subscription", func() {
		s.mux.HandleFunc("GET /api/subscriptions/my-active", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})
		sub, err := s.client.GetMyActiveSubscription(s.ctx, "t")
		s.NoError(err)
		s.Nil(sub)
	})
}

func (s *ClientTestSuite) TestActiveSubscription() {
	s.mux.HandleFunc("GET /api/subscriptions/my-active", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]any{
			"id":        "sub-1",
			"plan":      map[string]any{"name": "Premium", "price": 9.99},
			"status":    "Active",
			"startDate": "2026-01-01T00:00:00Z",
			"endDate":   "2026-04-01T00:00:00Z",
			"autoRenew": true,
		})
	})

	sub, err := s.client.GetMyActiveSubscription(s.ctx, "t")
	s.Require().NoError(err)
	s.Require().NotNil(sub)
	s.Equal("Premium", sub.PlanName)
	s.Equal(9.99, sub.Price)
	s.Require().NotNil(sub.EndDate)
	s.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), *sub.EndDate)
	s.True(sub.AutoRenew)
}

func (s *ClientTestSuite) TestUnreachable() {
	s.server.Close()

	_, err := s.client.GetCurrentQrCode(s.ctx, "t")
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrUnreachable))
	s.True(infra.IsKind(err, infra.KindUnreachable))
	s.Equal(usermsg.Unreachable, usermsg.For(err))
}

func (s *ClientTestSuite) TestServerError() {
	s.mux.HandleFunc("GET /api/users/me", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"title": "Database offline"})
	})

	_, err := s.client.GetCurrentUser(s.ctx, "t")
	s.True(infra.IsKind(err, infra.KindUpstream))
	s.Contains(usermsg.For(err), "status 500")
}
