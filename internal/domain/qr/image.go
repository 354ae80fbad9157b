package qr

import (
	"net/url"
	"strconv"
	"strings"
)

type ImageSource string

const (
	ImageSourceInline   ImageSource = "inline"
	ImageSourceBackend  ImageSource = "backend"
	ImageSourceRenderer ImageSource = "renderer"
)

const (
	DefaultRendererBaseURL = "https://api.qrserver.com/v1/create-qr-code/"
	DefaultRendererSize    = 300
)

type Image struct {
	Source ImageSource `json:"source"`
	URI    string      `json:"uri"`
}

// Renderer builds image URLs against a public QR rendering service.
type Renderer struct {
	baseURL string
	size    int
}

func NewRenderer(baseURL string, size int) (Renderer, error) {
	if baseURL == "" {
		baseURL = DefaultRendererBaseURL
	}
	if size <= 0 {
		size = DefaultRendererSize
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Renderer{}, ErrInvalidRenderer
	}
	return Renderer{baseURL: baseURL, size: size}, nil
}

func DefaultRenderer() Renderer {
	return Renderer{baseURL: DefaultRendererBaseURL, size: DefaultRendererSize}
}

// URL keeps the parameter order the rendering service documents; url.Values would sort it.
func (r Renderer) URL(token string) string {
	size := strconv.Itoa(r.size)
	var b strings.Builder
	b.WriteString(r.baseURL)
	b.WriteString("?size=")
	b.WriteString(size + "x" + size)
	b.WriteString("&data=")
	b.WriteString(url.QueryEscape(token))
	b.WriteString("&format=png&margin=1")
	return b.String()
}

// ResolveImage prefers the inline image, then the backend URL, then the public renderer.
func ResolveImage(resp CodeResponse, r Renderer) Image {
	if data := strings.TrimSpace(resp.ImageBase64); data != "" {
		if !strings.HasPrefix(data, "data:") {
			data = "data:image/png;base64," + data
		}
		return Image{Source: ImageSourceInline, URI: data}
	}
	if u := strings.TrimSpace(resp.QRCodeURL); u != "" {
		return Image{Source: ImageSourceBackend, URI: u}
	}
	return Image{Source: ImageSourceRenderer, URI: r.URL(resp.Token.Value())}
}

// Export is what the share/print collaborator receives. It always uses the renderer URL
// so that the exported code matches the raw token bit for bit.
type Export struct {
	Token     string `json:"token"`
	ImageURL  string `json:"imageUrl"`
	ExpiresAt string `json:"expiresAt"`
	FileName  string `json:"fileName"`
}

func NewExport(t Token, r Renderer) Export {
	return Export{
		Token:     t.Value(),
		ImageURL:  r.URL(t.Value()),
		ExpiresAt: t.ExpiresAt().UTC().Format("2006-01-02T15:04:05Z07:00"),
		FileName:  "maya-qr-" + t.ExpiresAt().UTC().Format("20060102-150405") + ".pdf",
	}
}
