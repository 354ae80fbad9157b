package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"maya-connect/internal/pkg/rawdto"
)

type SearchParams struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Page      int
	PageSize  int
}

func (p SearchParams) query() url.Values {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(p.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(p.Longitude, 'f', -1, 64))
	q.Set("radiusKm", strconv.FormatFloat(p.RadiusKm, 'f', -1, 64))
	q.Set("page", strconv.Itoa(max(p.Page, 1)))
	q.Set("pageSize", strconv.Itoa(max(p.PageSize, 1)))
	return q
}

// Page holds raw DTOs; field names vary between backend versions so items are
// left untyped for the domain normalizers.
type Page struct {
	Items      []map[string]any `json:"items"`
	TotalCount int              `json:"totalCount"`
}

func (c *Client) SearchPartners(ctx context.Context, token string, p SearchParams) (Page, error) {
	return c.page(ctx, request{method: http.MethodGet, path: "/api/partners/search", token: token, query: p.query()})
}

func (c *Client) GetPartner(ctx context.Context, token, id string) (map[string]any, error) {
	var raw map[string]any
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/partners/" + url.PathEscape(id), token: token}, &raw)
	return raw, err
}

func (c *Client) SearchStores(ctx context.Context, token string, p SearchParams) (Page, error) {
	return c.page(ctx, request{method: http.MethodGet, path: "/api/stores/search", token: token, query: p.query()})
}

func (c *Client) GetStore(ctx context.Context, token, id string) (map[string]any, error) {
	var raw map[string]any
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/stores/" + url.PathEscape(id), token: token}, &raw)
	return raw, err
}

// page accepts {items,totalCount}, {data,total} and bare arrays.
func (c *Client) page(ctx context.Context, r request) (Page, error) {
	var raw any
	if err := c.do(ctx, r, &raw); err != nil {
		return Page{}, err
	}

	switch v := raw.(type) {
	case []any:
		items := rawdto.Items(map[string]any{"items": v}, "items")
		return Page{Items: items, TotalCount: len(items)}, nil
	case map[string]any:
		items := rawdto.Items(v, "items", "data", "results")
		total := len(items)
		if n, ok := rawdto.Float(v, "totalCount", "total", "count"); ok {
			total = int(n)
		}
		return Page{Items: items, TotalCount: total}, nil
	default:
		return Page{}, nil
	}
}
