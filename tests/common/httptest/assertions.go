//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ErrorEnvelope is the error body with the detail left for the caller to decode.
type ErrorEnvelope struct {
	Error struct {
		Message   string `json:"message"`
		Retryable bool   `json:"retryable"`
	} `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

// AssertSuccessResponse checks the status and decodes the body into target when given.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "body: %s", w.Body.String()) {
		return
	}
	if target != nil && w.Code < 300 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "decode body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and, when msgFragment is set, that the
// envelope message contains it.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, msgFragment string) ErrorEnvelope {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "body: %s", w.Body.String())

	var env ErrorEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "decode error body: %s", w.Body.String())
	if msgFragment != "" {
		assert.Contains(t, env.Error.Message, msgFragment)
	}
	return env
}

// DecodeJSON decodes the recorded body into target or fails the test.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "decode body: %s", w.Body.String())
}
