//go:build unit || e2e

// Package httptest drives a router in-process and decodes the gateway's envelopes.
package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type RequestOption func(*http.Request)

func WithBearer(token string) RequestOption {
	return func(r *http.Request) {
		if token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

func WithCookies(cookies ...*http.Cookie) RequestOption {
	return func(r *http.Request) {
		for _, c := range cookies {
			r.AddCookie(c)
		}
	}
}

func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) { r.Header.Set(key, value) }
}

// Do serves one request. A non-nil body is sent as JSON.
func Do(t *testing.T, h http.Handler, method, path string, body any, opts ...RequestOption) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err, "encode request body")
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// PerformRequest is Do with an optional bearer token.
func PerformRequest(t *testing.T, h http.Handler, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return Do(t, h, method, path, body, WithBearer(authToken))
}

func PerformRequestWithCookies(t *testing.T, h http.Handler, method, path string, body any, cookies []*http.Cookie, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return Do(t, h, method, path, body, WithCookies(cookies...), WithBearer(authToken))
}

func ExtractCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Edit changes one field of a request body built by JSONMap.
type Edit func(map[string]any)

func Set(key string, value any) Edit {
	return func(m map[string]any) { m[key] = value }
}

func Drop(key string) Edit {
	return func(m map[string]any) { delete(m, key) }
}

// JSONMap round-trips v through JSON so tests can send bodies a typed DTO
// cannot express, such as missing or mistyped fields.
func JSONMap(t *testing.T, v any, edits ...Edit) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, edit := range edits {
		edit(m)
	}
	return m
}
