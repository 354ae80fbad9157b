package backend

import (
	"context"
	"net/http"

	"maya-connect/internal/domain/qr"
	"maya-connect/internal/pkg/errs"
	"maya-connect/internal/pkg/rawdto"
)

var (
	qrTokenFields  = []string{"token", "qrToken", "value"}
	qrExpiryFields = []string{"expiresAt", "expiration", "validUntil"}
	qrImageFields  = []string{"imageBase64", "qrCodeImage", "image"}
	qrURLFields    = []string{"qrCodeUrl", "imageUrl", "url"}
)

// GetCurrentQrCode fetches the member's current token and any image the backend rendered.
func (c *Client) GetCurrentQrCode(ctx context.Context, token string) (qr.CodeResponse, error) {
	var raw map[string]any
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/qrcodes/current", token: token}, &raw)
	if err != nil {
		return qr.CodeResponse{}, err
	}

	t, err := qrTokenFrom(raw)
	if err != nil {
		return qr.CodeResponse{}, errs.Wrap(err, "GET /api/qrcodes/current")
	}
	return qr.CodeResponse{
		Token:       t,
		ImageBase64: rawdto.String(raw, qrImageFields...),
		QRCodeURL:   rawdto.String(raw, qrURLFields...),
	}, nil
}

type issueTokenRequest struct {
	ForceRefresh bool `json:"forceRefresh"`
}

// IssueQrToken mints a new token. With forceRefresh the backend revokes the current one.
func (c *Client) IssueQrToken(ctx context.Context, token string, forceRefresh bool) (qr.Token, error) {
	var raw map[string]any
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/qrcodes/issue-token",
		token:  token,
		body:   issueTokenRequest{ForceRefresh: forceRefresh},
	}, &raw)
	if err != nil {
		return qr.Token{}, err
	}

	t, err := qrTokenFrom(raw)
	if err != nil {
		return qr.Token{}, errs.Wrap(err, "POST /api/qrcodes/issue-token")
	}
	return t, nil
}

func qrTokenFrom(raw map[string]any) (qr.Token, error) {
	expiresAt, _ := rawdto.Time(raw, qrExpiryFields...)
	return qr.NewToken(rawdto.String(raw, qrTokenFields...), expiresAt)
}
