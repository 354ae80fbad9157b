package partner

import (
	"cmp"
	"math"
	"slices"
)

const (
	MinOfferRating = 3.0

	// Differences at or below these thresholds do not decide the order.
	DistanceTieKm = 5.0
	RatingTie     = 0.5

	NearbyOfferLimit = 2
	NearbyStoreLimit = 3
)

// IsNearbyOffer reports whether p qualifies for the "nearby offers" list.
func IsNearbyOffer(p Partner, maxKm float64) bool {
	return p.HasActivePromotion() &&
		p.IsOpen &&
		p.DistanceKm <= maxKm &&
		p.Rating >= MinOfferRating
}

// Compare orders by distance, then rating, then promotion discount, each key only
// deciding when the difference exceeds its threshold. Closer, better rated and
// larger discounts come first.
func Compare(a, b Partner) int {
	if d := a.DistanceKm - b.DistanceKm; math.Abs(d) > DistanceTieKm {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	}
	if d := a.Rating - b.Rating; math.Abs(d) > RatingTie {
		return cmp.Compare(b.Rating, a.Rating)
	}
	return cmp.Compare(b.DiscountPercent(), a.DiscountPercent())
}

// Rank returns a sorted copy; equal elements keep their input order.
func Rank(list []Partner) []Partner {
	out := slices.Clone(list)
	slices.SortStableFunc(out, Compare)
	return out
}

func NearbyOffers(list []Partner, maxKm float64, limit int) []Partner {
	var eligible []Partner
	for _, p := range list {
		if IsNearbyOffer(p, maxKm) {
			eligible = append(eligible, p)
		}
	}
	return top(Rank(eligible), limit)
}

// NearbyStores ranks open and closed stores alike; only distance bounds the list.
func NearbyStores(list []Partner, maxKm float64, limit int) []Partner {
	var eligible []Partner
	for _, p := range list {
		if p.DistanceKm <= maxKm {
			eligible = append(eligible, p)
		}
	}
	return top(Rank(eligible), limit)
}

func top(list []Partner, n int) []Partner {
	if n <= 0 || len(list) <= n {
		return list
	}
	return list[:n]
}
