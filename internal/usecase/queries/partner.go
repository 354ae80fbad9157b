package queries

import (
	"context"
	"fmt"
	"math"

	"maya-connect/internal/domain/partner"
	"maya-connect/internal/infra"
	"maya-connect/internal/infra/backend"
	"maya-connect/internal/infra/cache"
	"maya-connect/internal/pkg/config"
	"maya-connect/internal/pkg/errs"
)

var ErrPartnerNotFound = errs.ErrPartnerNotFound

type PartnerReadStore interface {
	SearchPartners(ctx context.Context, token string, p backend.SearchParams) (backend.Page, error)
	GetPartner(ctx context.Context, token, id string) (map[string]any, error)
	SearchStores(ctx context.Context, token string, p backend.SearchParams) (backend.Page, error)
}

type PartnerQueries interface {
	NearbyOffers(ctx context.Context, token string, p NearbyParams) (*NearbyView, error)
	NearbyStores(ctx context.Context, token string, p NearbyParams) (*NearbyView, error)
	GetByID(ctx context.Context, token, id string) (*partner.Partner, error)
}

type partnerQueriesImpl struct {
	store PartnerReadStore
	memo  *cache.Memo
	cfg   config.NearbyConfig
}

func NewPartnerQueries(store PartnerReadStore, memo *cache.Memo, cfg config.NearbyConfig) PartnerQueries {
	return &partnerQueriesImpl{store: store, memo: memo, cfg: cfg}
}

func (q *partnerQueriesImpl) NearbyOffers(ctx context.Context, token string, p NearbyParams) (*NearbyView, error) {
	list, err := q.search(ctx, "partners", token, p, q.store.SearchPartners)
	if err != nil {
		return nil, err
	}
	return &NearbyView{
		Items:      partner.NearbyOffers(list, q.cfg.OfferMaxKm, partner.NearbyOfferLimit),
		Considered: len(list),
	}, nil
}

func (q *partnerQueriesImpl) NearbyStores(ctx context.Context, token string, p NearbyParams) (*NearbyView, error) {
	list, err := q.search(ctx, "stores", token, p, q.store.SearchStores)
	if err != nil {
		return nil, err
	}
	return &NearbyView{
		Items:      partner.NearbyStores(list, q.cfg.StoreMaxKm, partner.NearbyStoreLimit),
		Considered: len(list),
	}, nil
}

func (q *partnerQueriesImpl) GetByID(ctx context.Context, token, id string) (*partner.Partner, error) {
	raw, err := q.store.GetPartner(ctx, token, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrPartnerNotFound)
		}
		return nil, err
	}
	p := partner.Normalize(raw)
	if p.ID == "" {
		p.ID = id
	}
	return &p, nil
}

type searchFunc func(ctx context.Context, token string, p backend.SearchParams) (backend.Page, error)

// search loads the first page around p. Pages are memoized on coordinates
// rounded to roughly 100m, so members a street apart share an entry.
func (q *partnerQueriesImpl) search(ctx context.Context, kind, token string, p NearbyParams, fn searchFunc) ([]partner.Partner, error) {
	params := backend.SearchParams{
		Latitude:  round3(p.Latitude),
		Longitude: round3(p.Longitude),
		RadiusKm:  p.RadiusKm,
		Page:      1,
		PageSize:  q.cfg.SearchPageMax,
	}
	if params.RadiusKm <= 0 {
		params.RadiusKm = q.cfg.SearchRadius
	}

	key := fmt.Sprintf("nearby:%s:%.3f:%.3f:%g:%d:%d", kind, params.Latitude, params.Longitude, params.RadiusKm, params.Page, params.PageSize)
	page, err := cache.Remember(ctx, q.memo, key, func(ctx context.Context) (backend.Page, error) {
		return fn(ctx, token, params)
	})
	if err != nil {
		return nil, err
	}
	return partner.NormalizeAll(page.Items), nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
