//go:build unit

package qr_test

import (
	"testing"
	"time"

	"maya-connect/internal/domain/qr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewToken(t *testing.T) {
	t.Run("trims and keeps value", func(t *testing.T) {
		tok, err := qr.NewToken("  abc  ", baseTime)
		require.NoError(t, err)
		assert.Equal(t, "abc", tok.Value())
		assert.Equal(t, baseTime, tok.ExpiresAt())
	})

	t.Run("empty value", func(t *testing.T) {
		_, err := qr.NewToken("   ", baseTime)
		require.ErrorIs(t, err, qr.ErrEmptyToken)
	})

	t.Run("missing expiry", func(t *testing.T) {
		_, err := qr.NewToken("abc", time.Time{})
		require.ErrorIs(t, err, qr.ErrMissingExpiry)
	})
}

func TestRefreshDelay(t *testing.T) {
	testCases := []struct {
		name      string
		expiresIn time.Duration
		expected  time.Duration
	}{
		{name: "ten minutes left", expiresIn: 10 * time.Minute, expected: 9 * time.Minute},
		{name: "just over the lead", expiresIn: 61 * time.Second, expected: time.Second},
		{name: "exactly the lead", expiresIn: 60 * time.Second, expected: 0},
		{name: "inside the lead", expiresIn: 30 * time.Second, expected: 0},
		{name: "already expired", expiresIn: -time.Minute, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tok, err := qr.NewToken("abc", baseTime.Add(tc.expiresIn))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, tok.RefreshDelay(baseTime, qr.DefaultRefreshLead))
		})
	}
}

func TestRendererURL(t *testing.T) {
	r := qr.DefaultRenderer()
	assert.Equal(t,
		"https://api.qrserver.com/v1/create-qr-code/?size=300x300&data=a%2Bb%2Fc%3D%26d&format=png&margin=1",
		r.URL("a+b/c=&d"),
	)

	_, err := qr.NewRenderer("not a url", 300)
	require.ErrorIs(t, err, qr.ErrInvalidRenderer)

	custom, err := qr.NewRenderer("https://qr.example.com/render", 0)
	require.NoError(t, err)
	assert.Equal(t, "https://qr.example.com/render?size=300x300&data=tok&format=png&margin=1", custom.URL("tok"))
}

func TestResolveImage(t *testing.T) {
	tok, err := qr.NewToken("member-token", baseTime)
	require.NoError(t, err)
	r := qr.DefaultRenderer()

	testCases := []struct {
		name       string
		resp       qr.CodeResponse
		wantSource qr.ImageSource
		wantURI    string
	}{
		{
			name:       "inline base64 wins",
			resp:       qr.CodeResponse{Token: tok, ImageBase64: "iVBORw0", QRCodeURL: "https://backend/qr.png"},
			wantSource: qr.ImageSourceInline,
			wantURI:    "data:image/png;base64,iVBORw0",
		},
		{
			name:       "inline data uri kept as is",
			resp:       qr.CodeResponse{Token: tok, ImageBase64: "data:image/png;base64,xyz"},
			wantSource: qr.ImageSourceInline,
			wantURI:    "data:image/png;base64,xyz",
		},
		{
			name:       "backend url second",
			resp:       qr.CodeResponse{Token: tok, QRCodeURL: "https://backend/qr.png"},
			wantSource: qr.ImageSourceBackend,
			wantURI:    "https://backend/qr.png",
		},
		{
			name:       "renderer fallback",
			resp:       qr.CodeResponse{Token: tok},
			wantSource: qr.ImageSourceRenderer,
			wantURI:    r.URL("member-token"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			img := qr.ResolveImage(tc.resp, r)
			assert.Equal(t, tc.wantSource, img.Source)
			assert.Equal(t, tc.wantURI, img.URI)
		})
	}
}

func TestExportMatchesRenderer(t *testing.T) {
	tok, err := qr.NewToken("member token", baseTime)
	require.NoError(t, err)
	r := qr.DefaultRenderer()

	export := qr.NewExport(tok, r)
	img := qr.ResolveImage(qr.CodeResponse{Token: tok}, r)

	assert.Equal(t, img.URI, export.ImageURL)
	assert.Equal(t, "member token", export.Token)
	assert.Equal(t, "maya-qr-20250301-120000.pdf", export.FileName)
}
