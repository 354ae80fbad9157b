package partner

import (
	"regexp"
	"strconv"
	"strings"
)

// Partner is the UI projection shared by partners and stores. It is rebuilt on every fetch.
type Partner struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	DistanceKm  float64    `json:"distance"`
	IsOpen      bool       `json:"isOpen"`
	ClosingTime string     `json:"closingTime,omitempty"`
	Category    string     `json:"category"`
	Rating      float64    `json:"rating"`
	Promotion   *Promotion `json:"promotion,omitempty"`
}

type Promotion struct {
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

var discountRegex = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*%`)

// ParseDiscountPercent extracts the percentage from a free-text label such as "-30%" or "15 % off".
// Labels without a percentage yield 0.
func ParseDiscountPercent(label string) float64 {
	m := discountRegex.FindStringSubmatch(label)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.Replace(m[1], ",", ".", 1), 64)
	if err != nil {
		return 0
	}
	return v
}

func (p Partner) DiscountPercent() float64 {
	if p.Promotion == nil {
		return 0
	}
	return ParseDiscountPercent(p.Promotion.Label)
}

func (p Partner) HasActivePromotion() bool {
	return p.Promotion != nil && p.Promotion.Active
}
