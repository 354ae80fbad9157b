package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"maya-connect/internal/infra"
	"maya-connect/internal/pkg/config"
	"maya-connect/internal/pkg/errs"
)

// Client talks to the Maya backend. Every call takes the caller's bearer token;
// the client itself holds no credentials.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	logger  *slog.Logger
}

func New(cfg config.BackendConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		BaseURL: strings.TrimRight(cfg.BaseURL, "/"),
		HTTP: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// APIError is a non-2xx backend response. The message embeds "status <code>"
// for callers that only look at text.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	msg := "backend request failed"
	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	}
	return fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
}

func (e *APIError) HTTPStatus() int { return e.StatusCode }

// Message extracts a human message from a JSON problem body, falling back to the raw body.
func (e *APIError) Message() string {
	var body map[string]any
	if err := json.Unmarshal([]byte(e.Body), &body); err == nil {
		for _, k := range []string{"message", "detail", "title", "error"} {
			if s, ok := body[k].(string); ok && s != "" {
				return s
			}
		}
	}
	return e.Body
}

func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

type request struct {
	method string
	path   string
	token  string
	query  url.Values
	body   any
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	op := r.method + " " + r.path

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return errs.Wrap(err, "encode "+op)
		}
		body = bytes.NewReader(payload)
	}

	target := c.BaseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return errs.Wrap(err, "build "+op)
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		if ctx.Err() != nil && !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return errs.Wrap(err, op)
		}
		return infra.WrapErr(c.logger, infra.KindUnreachable, op, errs.Mark(err, errs.ErrUnreachable))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := &APIError{Method: r.method, Path: r.path, StatusCode: resp.StatusCode}
		if b, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil {
			apiErr.Body = strings.TrimSpace(string(b))
		}
		return infra.WrapErr(c.logger, kindFor(resp.StatusCode), op, apiErr)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return infra.WrapErr(c.logger, infra.KindDecode, op, err)
	}
	return nil
}

func kindFor(status int) infra.ErrorKind {
	switch {
	case status == http.StatusNotFound:
		return infra.KindNotFound
	case status >= 500:
		return infra.KindUpstream
	default:
		return infra.KindRejected
	}
}
