package queries

import (
	"context"
	"time"

	"maya-connect/internal/domain/transaction"
	"maya-connect/internal/infra/backend"
)

// summaryPageLimit caps how many pages a summary walks through.
const summaryPageLimit = 10

type TransactionReadStore interface {
	GetUserTransactions(ctx context.Context, token, userID string, page, pageSize int) (backend.Page, error)
}

type TransactionQueries interface {
	List(ctx context.Context, token, userID string, page, pageSize int) (*TransactionPageView, error)
	Summary(ctx context.Context, token, userID string, loc *time.Location) (*TransactionSummaryView, error)
}

type transactionQueriesImpl struct {
	store TransactionReadStore
}

func NewTransactionQueries(store TransactionReadStore) TransactionQueries {
	return &transactionQueriesImpl{store: store}
}

func (q *transactionQueriesImpl) List(ctx context.Context, token, userID string, page, pageSize int) (*TransactionPageView, error) {
	page, pageSize = ClampPage(page, pageSize)
	raw, err := q.store.GetUserTransactions(ctx, token, userID, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &TransactionPageView{
		Items:      transaction.NormalizeAll(raw.Items),
		TotalCount: raw.TotalCount,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Summary aggregates the member's history, newest month first.
func (q *transactionQueriesImpl) Summary(ctx context.Context, token, userID string, loc *time.Location) (*TransactionSummaryView, error) {
	var all []transaction.Transaction
	for page := 1; page <= summaryPageLimit; page++ {
		raw, err := q.store.GetUserTransactions(ctx, token, userID, page, MaxPageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, transaction.NormalizeAll(raw.Items)...)
		if len(raw.Items) < MaxPageSize || (raw.TotalCount > 0 && len(all) >= raw.TotalCount) {
			break
		}
	}

	return &TransactionSummaryView{
		Summary:   transaction.Summarize(all),
		ByMonth:   transaction.GroupByMonth(all, loc),
		ByPartner: transaction.GroupByPartner(all),
	}, nil
}
