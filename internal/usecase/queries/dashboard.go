package queries

import (
	"context"

	"maya-connect/internal/domain/dashboard"
	"maya-connect/internal/domain/user"
	"maya-connect/internal/pkg/clock"
	"maya-connect/internal/pkg/errs"
)

type DashboardQueries interface {
	ForPartner(ctx context.Context, profile user.Profile, days int) (*dashboard.Dashboard, error)
}

type dashboardQueriesImpl struct {
	clock clock.Clock
}

func NewDashboardQueries(clk clock.Clock) DashboardQueries {
	return &dashboardQueriesImpl{clock: clk}
}

// ForPartner serves generated figures; the backend has no partner analytics yet.
func (q *dashboardQueriesImpl) ForPartner(_ context.Context, profile user.Profile, days int) (*dashboard.Dashboard, error) {
	if !profile.IsPartner() {
		return nil, errs.ErrForbidden
	}
	if days == 0 {
		days = dashboard.DefaultDays
	}
	d, err := dashboard.Build(profile.ID, days, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return &d, nil
}
