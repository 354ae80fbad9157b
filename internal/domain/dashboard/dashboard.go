// Package dashboard builds the partner-role dashboard. The backend has no
// analytics endpoint yet, so figures are generated, but deterministically:
// the same partner and day always yield the same numbers.
package dashboard

import (
	"errors"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"time"
)

const (
	DefaultDays = 7
	MaxDays     = 90
)

var ErrInvalidRange = errors.New("dashboard range must be between 1 and 90 days")

type DayStat struct {
	Date    string  `json:"date"`
	Scans   int     `json:"scans"`
	Revenue float64 `json:"revenue"`
	Savings float64 `json:"savings"`
}

type Dashboard struct {
	PartnerID      string    `json:"partnerId"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	Days           []DayStat `json:"days"`
	TotalScans     int       `json:"totalScans"`
	TotalRevenue   float64   `json:"totalRevenue"`
	TotalSavings   float64   `json:"totalSavings"`
	AverageBasket  float64   `json:"averageBasket"`
	BusiestWeekday string    `json:"busiestWeekday"`
}

// Build returns days worth of stats ending on the calendar day of now, oldest first.
func Build(partnerID string, days int, now time.Time) (Dashboard, error) {
	if days < 1 || days > MaxDays {
		return Dashboard{}, ErrInvalidRange
	}

	seed := seedOf(partnerID)
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := end.AddDate(0, 0, -(days - 1))

	d := Dashboard{
		PartnerID: partnerID,
		From:      start.Format(time.DateOnly),
		To:        end.Format(time.DateOnly),
		Days:      make([]DayStat, 0, days),
	}

	scansByWeekday := map[time.Weekday]int{}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		stat := dayStat(seed, day)
		d.Days = append(d.Days, stat)
		d.TotalScans += stat.Scans
		d.TotalRevenue += stat.Revenue
		d.TotalSavings += stat.Savings
		scansByWeekday[day.Weekday()] += stat.Scans
	}

	d.TotalRevenue = round2(d.TotalRevenue)
	d.TotalSavings = round2(d.TotalSavings)
	if d.TotalScans > 0 {
		d.AverageBasket = round2(d.TotalRevenue / float64(d.TotalScans))
	}
	d.BusiestWeekday = busiest(scansByWeekday).String()
	return d, nil
}

func dayStat(seed uint64, day time.Time) DayStat {
	r := rand.New(rand.NewPCG(seed, uint64(day.Unix())))

	base := 8 + r.IntN(25)
	switch day.Weekday() {
	case time.Friday, time.Saturday:
		base += base / 2
	case time.Sunday:
		base -= base / 3
	}

	var revenue, savings float64
	for range base {
		basket := 8 + r.Float64()*42
		pct := float64(5 + 5*r.IntN(4))
		revenue += basket
		savings += basket * pct / 100
	}

	return DayStat{
		Date:    day.Format(time.DateOnly),
		Scans:   base,
		Revenue: round2(revenue),
		Savings: round2(savings),
	}
}

func busiest(byDay map[time.Weekday]int) time.Weekday {
	best, bestScans := time.Sunday, -1
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if n, ok := byDay[wd]; ok && n > bestScans {
			best, bestScans = wd, n
		}
	}
	return best
}

func seedOf(partnerID string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(partnerID))
	return h.Sum64()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
