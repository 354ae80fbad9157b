package queries

import (
	"maya-connect/internal/domain/partner"
	"maya-connect/internal/domain/transaction"
	"maya-connect/internal/infra/backend"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// NearbyParams locates a nearby search. Zero radius means the configured default.
type NearbyParams struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// NearbyView is the ranked, truncated list shown on the home screen.
type NearbyView struct {
	Items      []partner.Partner `json:"items"`
	Considered int               `json:"considered"`
}

type TransactionPageView struct {
	Items      []transaction.Transaction `json:"items"`
	TotalCount int                       `json:"totalCount"`
	Page       int                       `json:"page"`
	PageSize   int                       `json:"pageSize"`
}

type TransactionSummaryView struct {
	Summary   transaction.Summary `json:"summary"`
	ByMonth   []transaction.Group `json:"byMonth"`
	ByPartner []transaction.Group `json:"byPartner"`
}

type SubscriptionStatusView struct {
	Active       bool                  `json:"active"`
	Subscription *backend.Subscription `json:"subscription,omitempty"`
}

// ClampPage normalizes 1-based paging input.
func ClampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return page, min(pageSize, MaxPageSize)
}
