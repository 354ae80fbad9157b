package backend

import (
	"context"
	"net/http"
	"time"

	"maya-connect/internal/pkg/rawdto"
)

type Subscription struct {
	ID        string     `json:"id"`
	PlanName  string     `json:"planName"`
	Status    string     `json:"status"`
	Price     float64    `json:"price"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	AutoRenew bool       `json:"autoRenew"`
}

func (c *Client) HasActiveSubscription(ctx context.Context, token string) (bool, error) {
	var raw any
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/subscriptions/has-active", token: token}, &raw)
	if err != nil {
		return false, err
	}
	switch v := raw.(type) {
	case bool:
		return v, nil
	case map[string]any:
		active, _ := rawdto.Bool(v, "hasActiveSubscription", "hasActive", "active")
		return active, nil
	default:
		return false, nil
	}
}

// GetMyActiveSubscription returns nil, nil when the member has none.
func (c *Client) GetMyActiveSubscription(ctx context.Context, token string) (*Subscription, error) {
	var raw map[string]any
	err := c.do(ctx, request{method: http.MethodGet, path: "/api/subscriptions/my-active", token: token}, &raw)
	if err != nil {
		if StatusOf(err) == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	sub := &Subscription{
		ID:       rawdto.String(raw, "id", "subscriptionId"),
		PlanName: rawdto.String(raw, "planName", "plan", "name"),
		Status:   rawdto.String(raw, "status"),
	}
	if plan, ok := rawdto.Object(raw, "plan"); ok {
		sub.PlanName = rawdto.String(plan, "name", "title")
		if v, ok := rawdto.Float(plan, "price", "monthlyPrice"); ok {
			sub.Price = v
		}
	}
	if v, ok := rawdto.Float(raw, "price", "amount"); ok {
		sub.Price = v
	}
	if v, ok := rawdto.Time(raw, "startDate", "startedAt"); ok {
		sub.StartDate = v
	}
	if v, ok := rawdto.Time(raw, "endDate", "expiresAt", "renewalDate"); ok {
		sub.EndDate = &v
	}
	if v, ok := rawdto.Bool(raw, "autoRenew", "isAutoRenew"); ok {
		sub.AutoRenew = v
	}
	return sub, nil
}
