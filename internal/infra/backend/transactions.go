package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) GetUserTransactions(ctx context.Context, token, userID string, page, pageSize int) (Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(max(page, 1)))
	q.Set("pageSize", strconv.Itoa(max(pageSize, 1)))
	return c.page(ctx, request{
		method: http.MethodGet,
		path:   "/api/transactions/user/" + url.PathEscape(userID),
		token:  token,
		query:  q,
	})
}
