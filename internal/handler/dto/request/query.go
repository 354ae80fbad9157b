package request

import (
	"maya-connect/internal/usecase/queries"
)

type NearbyQuery struct {
	Latitude  *float64 `form:"lat" binding:"required,latitude"`
	Longitude *float64 `form:"lng" binding:"required,longitude"`
	RadiusKm  *float64 `form:"radiusKm" binding:"omitempty,gt=0,lte=100"`
}

func (q NearbyQuery) ToParams() queries.NearbyParams {
	return queries.NearbyParams{
		Latitude:  valueOr(q.Latitude, 0),
		Longitude: valueOr(q.Longitude, 0),
		RadiusKm:  valueOr(q.RadiusKm, 0),
	}
}

type PageQuery struct {
	Page     *int `form:"page" binding:"omitempty,min=1"`
	PageSize *int `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

func (q PageQuery) Values() (page, pageSize int) {
	return valueOr(q.Page, 1), valueOr(q.PageSize, queries.DefaultPageSize)
}

type SummaryQuery struct {
	TimeZone string `form:"tz"`
}

type DashboardQuery struct {
	Days *int `form:"days" binding:"omitempty,min=1,max=90"`
}

func (q DashboardQuery) Value() int {
	return valueOr(q.Days, 0)
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
