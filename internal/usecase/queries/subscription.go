package queries

import (
	"context"

	"maya-connect/internal/infra/backend"
)

type SubscriptionReadStore interface {
	HasActiveSubscription(ctx context.Context, token string) (bool, error)
	GetMyActiveSubscription(ctx context.Context, token string) (*backend.Subscription, error)
}

type SubscriptionQueries interface {
	Status(ctx context.Context, token string) (*SubscriptionStatusView, error)
}

type subscriptionQueriesImpl struct {
	store SubscriptionReadStore
}

func NewSubscriptionQueries(store SubscriptionReadStore) SubscriptionQueries {
	return &subscriptionQueriesImpl{store: store}
}

func (q *subscriptionQueriesImpl) Status(ctx context.Context, token string) (*SubscriptionStatusView, error) {
	active, err := q.store.HasActiveSubscription(ctx, token)
	if err != nil {
		return nil, err
	}
	if !active {
		return &SubscriptionStatusView{}, nil
	}

	sub, err := q.store.GetMyActiveSubscription(ctx, token)
	if err != nil {
		return nil, err
	}
	return &SubscriptionStatusView{Active: sub != nil, Subscription: sub}, nil
}
