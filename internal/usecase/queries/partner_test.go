//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"maya-connect/internal/infra"
	"maya-connect/internal/infra/backend"
	"maya-connect/internal/infra/cache"
	"maya-connect/internal/pkg/clock"
	"maya-connect/internal/pkg/config"
	"maya-connect/internal/pkg/errs"
	"maya-connect/internal/usecase/queries"
	"maya-connect/tests/common/builder"
	queriesmock "maya-connect/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

var nearbyCfg = config.NearbyConfig{
	OfferMaxKm:    10,
	StoreMaxKm:    25,
	SearchRadius:  25,
	SearchPageMax: 50,
}

func newPartnerQueries(t *testing.T) (*queriesmock.MockPartnerReadStore, queries.PartnerQueries) {
	t.Helper()
	store := queriesmock.NewMockPartnerReadStore(gomock.NewController(t))
	clk := clock.NewMockClock(time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))
	memo := cache.NewMemo(cache.NewMemory(64, time.Hour, clk), 2*time.Minute, discard)
	return store, queries.NewPartnerQueries(store, memo, nearbyCfg)
}

func TestPartnerQueries_NearbyOffers(t *testing.T) {
	ctx := context.Background()
	params := queries.NearbyParams{Latitude: 48.85661, Longitude: 2.35222}

	t.Run("filters and ranks the first page", func(t *testing.T) {
		store, q := newPartnerQueries(t)
		page := backend.Page{Items: []map[string]any{
			builder.NewPartnerBuilder().WithName("near").WithDistance(1).WithRating(4.5).BuildDTO(),
			builder.NewPartnerBuilder().WithName("bigger discount").WithDistance(2).WithRating(4.6).WithPromotion("-20%").BuildDTO(),
			builder.NewPartnerBuilder().WithName("closed").Closed().BuildDTO(),
			builder.NewPartnerBuilder().WithName("poorly rated").WithRating(2.5).BuildDTO(),
			builder.NewPartnerBuilder().WithName("no promo").WithoutPromotion().BuildDTO(),
			builder.NewPartnerBuilder().WithName("too far").WithDistance(12).BuildDTO(),
		}}

		store.EXPECT().SearchPartners(gomock.Any(), "token", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, p backend.SearchParams) (backend.Page, error) {
				assert.Equal(t, 48.857, p.Latitude)
				assert.Equal(t, 2.352, p.Longitude)
				assert.Equal(t, nearbyCfg.SearchRadius, p.RadiusKm, "zero radius uses the configured default")
				assert.Equal(t, 1, p.Page)
				assert.Equal(t, nearbyCfg.SearchPageMax, p.PageSize)
				return page, nil
			})

		view, err := q.NearbyOffers(ctx, "token", params)
		require.NoError(t, err)
		assert.Equal(t, 6, view.Considered)
		require.Len(t, view.Items, 2)
		assert.Equal(t, "bigger discount", view.Items[0].Name)
		assert.Equal(t, "near", view.Items[1].Name)
	})

	t.Run("nearby coordinates share a cached page", func(t *testing.T) {
		store, q := newPartnerQueries(t)
		store.EXPECT().SearchPartners(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(backend.Page{Items: []map[string]any{builder.NewPartnerBuilder().BuildDTO()}}, nil).
			Times(1)

		_, err := q.NearbyOffers(ctx, "token", params)
		require.NoError(t, err)
		view, err := q.NearbyOffers(ctx, "token", queries.NearbyParams{Latitude: 48.85659, Longitude: 2.35218})
		require.NoError(t, err)
		assert.Len(t, view.Items, 1)
	})

	t.Run("failures are not cached", func(t *testing.T) {
		store, q := newPartnerQueries(t)
		gomock.InOrder(
			store.EXPECT().SearchPartners(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(backend.Page{}, errors.New("timeout")),
			store.EXPECT().SearchPartners(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(backend.Page{}, nil),
		)

		_, err := q.NearbyOffers(ctx, "token", params)
		assert.Error(t, err)
		view, err := q.NearbyOffers(ctx, "token", params)
		require.NoError(t, err)
		assert.Empty(t, view.Items)
	})
}

func TestPartnerQueries_NearbyStores(t *testing.T) {
	store, q := newPartnerQueries(t)
	store.EXPECT().SearchStores(gomock.Any(), "token", gomock.Any()).
		Return(backend.Page{Items: []map[string]any{
			builder.NewPartnerBuilder().WithName("a").WithDistance(20).BuildDTO(),
			builder.NewPartnerBuilder().WithName("b").WithDistance(1).Closed().WithoutPromotion().BuildDTO(),
			builder.NewPartnerBuilder().WithName("c").WithDistance(8).BuildDTO(),
			builder.NewPartnerBuilder().WithName("d").WithDistance(30).BuildDTO(),
			builder.NewPartnerBuilder().WithName("e").WithDistance(14).BuildDTO(),
		}}, nil)

	view, err := q.NearbyStores(context.Background(), "token", queries.NearbyParams{Latitude: 1, Longitude: 1, RadiusKm: 30})
	require.NoError(t, err)

	var names []string
	for _, p := range view.Items {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"b", "c", "e"}, names)
}

func TestPartnerQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes the DTO", func(t *testing.T) {
		store, q := newPartnerQueries(t)
		dto := builder.NewPartnerBuilder().WithName("Chez Awa").BuildDTO()
		delete(dto, "id")
		store.EXPECT().GetPartner(gomock.Any(), "token", "p-42").Return(dto, nil)

		p, err := q.GetByID(ctx, "token", "p-42")
		require.NoError(t, err)
		assert.Equal(t, "p-42", p.ID)
		assert.Equal(t, "Chez Awa", p.Name)
	})

	t.Run("not found", func(t *testing.T) {
		store, q := newPartnerQueries(t)
		store.EXPECT().GetPartner(gomock.Any(), "token", "missing").
			Return(nil, infra.WrapErr(discard, infra.KindNotFound, "get partner", &backend.APIError{StatusCode: 404}))

		_, err := q.GetByID(ctx, "token", "missing")
		assert.True(t, errs.Is(err, queries.ErrPartnerNotFound))
	})
}
