package partner

import (
	"math"
	"strconv"
	"strings"

	"maya-connect/internal/pkg/rawdto"
)

// Accepted source fields per target field, highest precedence first.
var (
	idFields          = []string{"id", "partnerId", "storeId", "_id"}
	nameFields        = []string{"name", "partnerName", "storeName", "businessName", "title"}
	descriptionFields = []string{"description", "shortDescription", "about"}
	addressFields     = []string{"address", "fullAddress", "formattedAddress"}
	distanceKmFields  = []string{"distance", "distanceKm", "distance_km", "distanceInKm"}
	distanceMFields   = []string{"distanceMeters", "distance_m"}
	openFields        = []string{"isOpen", "isOpenNow", "open"}
	closingFields     = []string{"closingTime", "closesAt", "closeTime"}
	categoryFields    = []string{"category", "sector", "businessType", "type", "categoryName"}
	ratingFields      = []string{"rating", "averageRating", "score", "stars"}
	promotionFields   = []string{"promotion", "currentOffer", "offer"}
	discountFields    = []string{"discountPercentage", "discountPercent", "discount"}
	promoLabelFields  = []string{"label", "discountLabel", "title"}
	promoDescFields   = []string{"description", "details"}
	promoActiveFields = []string{"isActive", "active", "enabled"}
	addressPartFields = []string{"street", "line1", "postalCode", "city"}
)

// Normalize maps a backend partner or store DTO into a Partner.
// Missing isOpen defaults to true; missing promotion active flag defaults to true.
func Normalize(raw map[string]any) Partner {
	p := Partner{
		ID:          rawdto.String(raw, idFields...),
		Name:        rawdto.String(raw, nameFields...),
		Description: rawdto.String(raw, descriptionFields...),
		Address:     normalizeAddress(raw),
		ClosingTime: rawdto.String(raw, closingFields...),
		Category:    normalizeCategory(raw),
		IsOpen:      true,
	}

	if v, ok := rawdto.Float(raw, distanceKmFields...); ok {
		p.DistanceKm = v
	} else if v, ok := rawdto.Float(raw, distanceMFields...); ok {
		p.DistanceKm = v / 1000
	}
	if v, ok := rawdto.Bool(raw, openFields...); ok {
		p.IsOpen = v
	}
	if v, ok := rawdto.Float(raw, ratingFields...); ok {
		p.Rating = v
	}
	p.Promotion = normalizePromotion(raw)
	return p
}

func NormalizeAll(raws []map[string]any) []Partner {
	out := make([]Partner, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw))
	}
	return out
}

func normalizeAddress(raw map[string]any) string {
	for _, key := range addressFields {
		switch v := raw[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case map[string]any:
			var parts []string
			for _, k := range addressPartFields {
				if s := rawdto.StringValue(v[k]); s != "" {
					parts = append(parts, s)
				}
			}
			if len(parts) > 0 {
				return strings.Join(parts, ", ")
			}
		}
	}
	return ""
}

func normalizeCategory(raw map[string]any) string {
	for _, key := range categoryFields {
		switch v := raw[key].(type) {
		case map[string]any:
			if s := rawdto.String(v, "name", "label"); s != "" {
				return s
			}
		default:
			if s := rawdto.StringValue(v); s != "" {
				return s
			}
		}
	}
	return ""
}

func normalizePromotion(raw map[string]any) *Promotion {
	if obj, ok := rawdto.Object(raw, promotionFields...); ok {
		promo := &Promotion{
			Label:       rawdto.String(obj, promoLabelFields...),
			Description: rawdto.String(obj, promoDescFields...),
			Active:      true,
		}
		if promo.Label == "" {
			promo.Label = discountLabel(obj)
		}
		if v, ok := rawdto.Bool(obj, promoActiveFields...); ok {
			promo.Active = v
		}
		return promo
	}

	if label := discountLabel(raw); label != "" {
		return &Promotion{Label: label, Active: true}
	}
	return nil
}

// discountLabel keeps a textual percentage as is and renders a bare number as "-N%".
func discountLabel(raw map[string]any) string {
	if s := rawdto.String(raw, discountFields...); strings.Contains(s, "%") {
		return s
	}
	if pct, ok := rawdto.Float(raw, discountFields...); ok && pct != 0 {
		return "-" + strconv.FormatFloat(math.Abs(pct), 'f', -1, 64) + "%"
	}
	return ""
}
