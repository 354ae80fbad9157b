//go:build unit || e2e

package builder

import (
	"time"

	"maya-connect/internal/domain/transaction"
)

type TransactionBuilder struct {
	t transaction.Transaction
}

func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{t: transaction.Transaction{
		ID:              "tx-1",
		PartnerID:       "p-1",
		PartnerName:     "Café Maya",
		GrossAmount:     40,
		NetAmount:       36,
		DiscountPercent: 10,
		Savings:         4,
		CreatedAt:       time.Date(2026, 2, 14, 18, 30, 0, 0, time.UTC),
	}}
}

func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.t.ID = id
	return b
}

func (b *TransactionBuilder) WithPartner(id, name string) *TransactionBuilder {
	b.t.PartnerID, b.t.PartnerName = id, name
	return b
}

// WithAmounts sets gross and discount and derives net and savings.
func (b *TransactionBuilder) WithAmounts(gross, pct float64) *TransactionBuilder {
	b.t.GrossAmount = gross
	b.t.DiscountPercent = pct
	b.t.Savings = gross * pct / 100
	b.t.NetAmount = gross - b.t.Savings
	return b
}

func (b *TransactionBuilder) At(at time.Time) *TransactionBuilder {
	b.t.CreatedAt = at
	return b
}

func (b *TransactionBuilder) Build() transaction.Transaction {
	return b.t
}

func (b *TransactionBuilder) BuildDTO() map[string]any {
	return map[string]any{
		"id":              b.t.ID,
		"partnerId":       b.t.PartnerID,
		"partnerName":     b.t.PartnerName,
		"amount":          b.t.GrossAmount,
		"netAmount":       b.t.NetAmount,
		"discountPercent": b.t.DiscountPercent,
		"savings":         b.t.Savings,
		"createdAt":       b.t.CreatedAt.Format(time.RFC3339),
	}
}
