//go:build unit

package partner_test

import (
	"encoding/json"
	"testing"

	"maya-connect/internal/domain/partner"
	"maya-connect/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestNormalize(t *testing.T) {
	t.Run("primary field names round trip", func(t *testing.T) {
		b := builder.NewPartnerBuilder()
		expected := b.BuildDomain()

		actual := partner.Normalize(b.BuildDTO())

		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("Partner mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("alternate field names", func(t *testing.T) {
		raw := decode(t, `{
			"partnerId": 42,
			"businessName": "Boulangerie",
			"shortDescription": "Fresh bread",
			"address": {"street": "1 rue de Paris", "city": "Lyon"},
			"distanceMeters": 2500,
			"isOpenNow": "false",
			"closesAt": "19:00",
			"sector": "bakery",
			"averageRating": "4.5",
			"discountPercentage": 15
		}`)

		p := partner.Normalize(raw)

		assert.Equal(t, "42", p.ID)
		assert.Equal(t, "Boulangerie", p.Name)
		assert.Equal(t, "Fresh bread", p.Description)
		assert.Equal(t, "1 rue de Paris, Lyon", p.Address)
		assert.InDelta(t, 2.5, p.DistanceKm, 1e-9)
		assert.False(t, p.IsOpen)
		assert.Equal(t, "19:00", p.ClosingTime)
		assert.Equal(t, "bakery", p.Category)
		assert.InDelta(t, 4.5, p.Rating, 1e-9)
		require.NotNil(t, p.Promotion)
		assert.Equal(t, "-15%", p.Promotion.Label)
		assert.True(t, p.Promotion.Active)
	})

	t.Run("precedence prefers category over sector", func(t *testing.T) {
		raw := decode(t, `{"category": "", "sector": "retail", "businessType": "shop"}`)
		assert.Equal(t, "retail", partner.Normalize(raw).Category)

		raw = decode(t, `{"category": {"name": "food"}, "sector": "retail"}`)
		assert.Equal(t, "food", partner.Normalize(raw).Category)
	})

	t.Run("promotion object variants", func(t *testing.T) {
		raw := decode(t, `{"currentOffer": {"title": "Happy hour -25%", "active": false}}`)
		p := partner.Normalize(raw)
		require.NotNil(t, p.Promotion)
		assert.Equal(t, "Happy hour -25%", p.Promotion.Label)
		assert.False(t, p.Promotion.Active)
		assert.InDelta(t, 25, p.DiscountPercent(), 1e-9)

		raw = decode(t, `{"promotion": {"discount": "-20%", "description": "weekdays"}}`)
		p = partner.Normalize(raw)
		require.NotNil(t, p.Promotion)
		assert.Equal(t, "-20%", p.Promotion.Label)
		assert.Equal(t, "weekdays", p.Promotion.Description)
	})

	t.Run("defaults", func(t *testing.T) {
		p := partner.Normalize(map[string]any{"id": "x"})
		assert.True(t, p.IsOpen)
		assert.Nil(t, p.Promotion)
		assert.Zero(t, p.DistanceKm)
		assert.Zero(t, p.Rating)
	})
}
