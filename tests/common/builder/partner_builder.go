//go:build unit || e2e

package builder

import (
	"maya-connect/internal/domain/partner"

	"github.com/google/uuid"
)

type PartnerBuilder struct {
	ID          string
	Name        string
	DistanceKm  float64
	Rating      float64
	IsOpen      bool
	Category    string
	PromoLabel  string
	PromoActive bool
	NoPromotion bool
}

func NewPartnerBuilder() *PartnerBuilder {
	return &PartnerBuilder{
		ID:          uuid.NewString(),
		Name:        "Café Maya",
		DistanceKm:  1.5,
		Rating:      4.2,
		IsOpen:      true,
		Category:    "restaurant",
		PromoLabel:  "-10%",
		PromoActive: true,
	}
}

func (b *PartnerBuilder) With(mutate func(*PartnerBuilder)) *PartnerBuilder {
	mutate(b)
	return b
}

func (b *PartnerBuilder) WithName(name string) *PartnerBuilder {
	b.Name = name
	return b
}

func (b *PartnerBuilder) WithDistance(km float64) *PartnerBuilder {
	b.DistanceKm = km
	return b
}

func (b *PartnerBuilder) WithRating(r float64) *PartnerBuilder {
	b.Rating = r
	return b
}

func (b *PartnerBuilder) WithPromotion(label string) *PartnerBuilder {
	b.PromoLabel = label
	b.PromoActive = true
	b.NoPromotion = false
	return b
}

func (b *PartnerBuilder) WithInactivePromotion() *PartnerBuilder {
	b.PromoActive = false
	return b
}

func (b *PartnerBuilder) WithoutPromotion() *PartnerBuilder {
	b.NoPromotion = true
	return b
}

func (b *PartnerBuilder) Closed() *PartnerBuilder {
	b.IsOpen = false
	return b
}

func (b *PartnerBuilder) BuildDomain() partner.Partner {
	p := partner.Partner{
		ID:         b.ID,
		Name:       b.Name,
		DistanceKm: b.DistanceKm,
		Rating:     b.Rating,
		IsOpen:     b.IsOpen,
		Category:   b.Category,
	}
	if !b.NoPromotion {
		p.Promotion = &partner.Promotion{Label: b.PromoLabel, Active: b.PromoActive}
	}
	return p
}

// BuildDTO renders the builder as a backend DTO using the primary field names.
func (b *PartnerBuilder) BuildDTO() map[string]any {
	dto := map[string]any{
		"id":       b.ID,
		"name":     b.Name,
		"distance": b.DistanceKm,
		"rating":   b.Rating,
		"isOpen":   b.IsOpen,
		"category": b.Category,
	}
	if !b.NoPromotion {
		dto["promotion"] = map[string]any{
			"label":    b.PromoLabel,
			"isActive": b.PromoActive,
		}
	}
	return dto
}
