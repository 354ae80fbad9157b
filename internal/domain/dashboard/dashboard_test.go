//go:build unit

package dashboard_test

import (
	"testing"
	"time"

	"maya-connect/internal/domain/dashboard"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 15, 16, 45, 0, 0, time.UTC)

func TestBuild(t *testing.T) {
	t.Run("deterministic per partner", func(t *testing.T) {
		a, err := dashboard.Build("p-1", 7, now)
		require.NoError(t, err)
		b, err := dashboard.Build("p-1", 7, now.Add(3*time.Hour))
		require.NoError(t, err)

		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("Dashboard mismatch (-want +got):\n%s", diff)
		}

		other, err := dashboard.Build("p-2", 7, now)
		require.NoError(t, err)
		assert.NotEqual(t, a.Days, other.Days)
	})

	t.Run("covers the range oldest first", func(t *testing.T) {
		d, err := dashboard.Build("p-1", 7, now)
		require.NoError(t, err)

		require.Len(t, d.Days, 7)
		assert.Equal(t, "2026-03-09", d.From)
		assert.Equal(t, "2026-03-15", d.To)
		assert.Equal(t, d.From, d.Days[0].Date)
		assert.Equal(t, d.To, d.Days[6].Date)
	})

	t.Run("totals add up", func(t *testing.T) {
		d, err := dashboard.Build("p-1", 30, now)
		require.NoError(t, err)

		scans := 0
		var revenue float64
		for _, day := range d.Days {
			scans += day.Scans
			revenue += day.Revenue
			assert.Positive(t, day.Scans)
			assert.Less(t, day.Savings, day.Revenue)
		}
		assert.Equal(t, scans, d.TotalScans)
		assert.InDelta(t, revenue, d.TotalRevenue, 0.05)
		assert.NotEmpty(t, d.BusiestWeekday)
		assert.Positive(t, d.AverageBasket)
	})

	t.Run("rejects out of range", func(t *testing.T) {
		for _, days := range []int{0, -1, dashboard.MaxDays + 1} {
			_, err := dashboard.Build("p-1", days, now)
			assert.ErrorIs(t, err, dashboard.ErrInvalidRange)
		}
	})
}
