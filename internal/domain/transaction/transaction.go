package transaction

import (
	"math"
	"time"

	"maya-connect/internal/pkg/rawdto"
)

// Transaction is the display projection of a member purchase at a partner.
type Transaction struct {
	ID              string    `json:"id"`
	PartnerID       string    `json:"partnerId"`
	PartnerName     string    `json:"partnerName"`
	GrossAmount     float64   `json:"grossAmount"`
	NetAmount       float64   `json:"netAmount"`
	DiscountPercent float64   `json:"discountPercent"`
	Savings         float64   `json:"savings"`
	CreatedAt       time.Time `json:"createdAt"`
}

var (
	idFields          = []string{"id", "transactionId", "_id"}
	partnerIDFields   = []string{"partnerId", "storeId", "merchantId"}
	partnerNameFields = []string{"partnerName", "storeName", "merchantName"}
	partnerObjFields  = []string{"partner", "store", "merchant"}
	grossFields       = []string{"amount", "grossAmount", "originalAmount", "totalAmount", "amountBeforeDiscount"}
	netFields         = []string{"netAmount", "finalAmount", "amountAfterDiscount", "paidAmount"}
	discountFields    = []string{"discountPercent", "discountPercentage", "discountRate"}
	savingsFields     = []string{"savings", "discountAmount", "savedAmount", "amountSaved"}
	timeFields        = []string{"createdAt", "transactionDate", "date", "timestamp"}
)

// Normalize maps a backend transaction DTO. Missing amounts are derived from
// the others: net = gross - savings, savings = gross * pct / 100, and so on.
func Normalize(raw map[string]any) Transaction {
	t := Transaction{
		ID:          rawdto.String(raw, idFields...),
		PartnerID:   rawdto.String(raw, partnerIDFields...),
		PartnerName: rawdto.String(raw, partnerNameFields...),
	}
	if obj, ok := rawdto.Object(raw, partnerObjFields...); ok {
		if t.PartnerID == "" {
			t.PartnerID = rawdto.String(obj, "id", "_id")
		}
		if t.PartnerName == "" {
			t.PartnerName = rawdto.String(obj, "name", "businessName")
		}
	}
	if v, ok := rawdto.Time(raw, timeFields...); ok {
		t.CreatedAt = v
	}

	gross, hasGross := rawdto.Float(raw, grossFields...)
	net, hasNet := rawdto.Float(raw, netFields...)
	pct, hasPct := rawdto.Float(raw, discountFields...)
	savings, hasSavings := rawdto.Float(raw, savingsFields...)

	if !hasGross && hasNet && hasSavings {
		gross, hasGross = net+savings, true
	}
	if !hasSavings && hasGross {
		switch {
		case hasNet:
			savings, hasSavings = gross-net, true
		case hasPct:
			savings, hasSavings = gross*pct/100, true
		}
	}
	if !hasNet && hasGross {
		net = gross - savings
	}
	if !hasPct && hasSavings && gross > 0 {
		pct = savings / gross * 100
	}

	t.GrossAmount = round2(gross)
	t.NetAmount = round2(net)
	t.Savings = round2(savings)
	t.DiscountPercent = round2(pct)
	return t
}

func NormalizeAll(raws []map[string]any) []Transaction {
	out := make([]Transaction, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw))
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
