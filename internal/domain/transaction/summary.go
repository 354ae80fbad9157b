package transaction

import (
	"cmp"
	"slices"
	"time"
)

type Summary struct {
	Count           int     `json:"count"`
	GrossTotal      float64 `json:"grossTotal"`
	NetTotal        float64 `json:"netTotal"`
	SavingsTotal    float64 `json:"savingsTotal"`
	AverageDiscount float64 `json:"averageDiscount"`
}

func Summarize(list []Transaction) Summary {
	var s Summary
	var pctSum float64
	for _, t := range list {
		s.Count++
		s.GrossTotal += t.GrossAmount
		s.NetTotal += t.NetAmount
		s.SavingsTotal += t.Savings
		pctSum += t.DiscountPercent
	}
	if s.Count > 0 {
		s.AverageDiscount = round2(pctSum / float64(s.Count))
	}
	s.GrossTotal = round2(s.GrossTotal)
	s.NetTotal = round2(s.NetTotal)
	s.SavingsTotal = round2(s.SavingsTotal)
	return s
}

type Group struct {
	Key          string        `json:"key"`
	Label        string        `json:"label"`
	Summary      Summary       `json:"summary"`
	Transactions []Transaction `json:"transactions"`
}

// GroupByMonth buckets by calendar month in loc, newest month first. Within a
// month transactions are newest first.
func GroupByMonth(list []Transaction, loc *time.Location) []Group {
	if loc == nil {
		loc = time.UTC
	}
	groups := group(list, func(t Transaction) (string, string) {
		at := t.CreatedAt.In(loc)
		return at.Format("2006-01"), at.Format("January 2006")
	})
	for i := range groups {
		slices.SortStableFunc(groups[i].Transactions, func(a, b Transaction) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
	slices.SortStableFunc(groups, func(a, b Group) int {
		return cmp.Compare(b.Key, a.Key)
	})
	return groups
}

// GroupByPartner buckets by partner, highest total savings first.
func GroupByPartner(list []Transaction) []Group {
	groups := group(list, func(t Transaction) (string, string) {
		key := t.PartnerID
		if key == "" {
			key = t.PartnerName
		}
		return key, t.PartnerName
	})
	slices.SortStableFunc(groups, func(a, b Group) int {
		if c := cmp.Compare(b.Summary.SavingsTotal, a.Summary.SavingsTotal); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	return groups
}

func group(list []Transaction, keyOf func(Transaction) (string, string)) []Group {
	index := map[string]int{}
	var groups []Group
	for _, t := range list {
		key, label := keyOf(t)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key, Label: label})
		}
		groups[i].Transactions = append(groups[i].Transactions, t)
	}
	for i := range groups {
		groups[i].Summary = Summarize(groups[i].Transactions)
	}
	return groups
}
