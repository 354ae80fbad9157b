//go:build unit

package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"maya-connect/internal/infra/backend"
	"maya-connect/internal/usecase/queries"
	"maya-connect/tests/common/builder"
	queriesmock "maya-connect/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func transactionPage(n, offset, total int) backend.Page {
	items := make([]map[string]any, 0, n)
	for i := range n {
		items = append(items, builder.NewTransactionBuilder().
			WithID(fmt.Sprintf("tx-%d", offset+i)).
			WithAmounts(10, 10).
			BuildDTO())
	}
	return backend.Page{Items: items, TotalCount: total}
}

func TestTransactionQueries_List(t *testing.T) {
	store := queriesmock.NewMockTransactionReadStore(gomock.NewController(t))
	q := queries.NewTransactionQueries(store)

	store.EXPECT().GetUserTransactions(gomock.Any(), "token", "user-1", 1, queries.MaxPageSize).
		Return(transactionPage(2, 0, 2), nil)

	view, err := q.List(context.Background(), "token", "user-1", 0, 500)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, queries.MaxPageSize, view.PageSize)
	assert.Equal(t, 2, view.TotalCount)
	assert.Len(t, view.Items, 2)
}

func TestTransactionQueries_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("walks pages until the total is reached", func(t *testing.T) {
		store := queriesmock.NewMockTransactionReadStore(gomock.NewController(t))
		q := queries.NewTransactionQueries(store)

		gomock.InOrder(
			store.EXPECT().GetUserTransactions(gomock.Any(), "token", "user-1", 1, queries.MaxPageSize).
				Return(transactionPage(100, 0, 150), nil),
			store.EXPECT().GetUserTransactions(gomock.Any(), "token", "user-1", 2, queries.MaxPageSize).
				Return(transactionPage(50, 100, 150), nil),
		)

		view, err := q.Summary(ctx, "token", "user-1", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 150, view.Summary.Count)
		assert.InDelta(t, 150.0, view.Summary.SavingsTotal, 1e-9)
		require.Len(t, view.ByMonth, 1)
		assert.Equal(t, 150, view.ByMonth[0].Summary.Count)
	})

	t.Run("stops at the page limit", func(t *testing.T) {
		store := queriesmock.NewMockTransactionReadStore(gomock.NewController(t))
		q := queries.NewTransactionQueries(store)

		store.EXPECT().GetUserTransactions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(transactionPage(100, 0, 0), nil).
			Times(10)

		view, err := q.Summary(ctx, "token", "user-1", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 1000, view.Summary.Count)
	})

	t.Run("empty history", func(t *testing.T) {
		store := queriesmock.NewMockTransactionReadStore(gomock.NewController(t))
		q := queries.NewTransactionQueries(store)
		store.EXPECT().GetUserTransactions(gomock.Any(), gomock.Any(), gomock.Any(), 1, gomock.Any()).
			Return(backend.Page{}, nil)

		view, err := q.Summary(ctx, "token", "user-1", time.UTC)
		require.NoError(t, err)
		assert.Zero(t, view.Summary.Count)
		assert.Empty(t, view.ByMonth)
	})
}
