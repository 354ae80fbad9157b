//go:build unit

package clock_test

import (
	"testing"
	"time"

	"maya-connect/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestMockClock(t *testing.T) {
	t.Run("fires due timers in order", func(t *testing.T) {
		c := clock.NewMockClock(t0)
		var fired []string
		c.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })
		c.AfterFunc(time.Second, func() { fired = append(fired, "a") })
		c.AfterFunc(time.Minute, func() { fired = append(fired, "late") })

		c.Add(1999 * time.Millisecond)
		assert.Equal(t, []string{"a"}, fired)

		c.Add(time.Millisecond)
		assert.Equal(t, []string{"a", "b"}, fired)
		assert.Equal(t, []time.Time{t0.Add(time.Minute)}, c.Pending())
	})

	t.Run("stopped timers never fire", func(t *testing.T) {
		c := clock.NewMockClock(t0)
		fired := false
		timer := c.AfterFunc(time.Second, func() { fired = true })

		assert.True(t, timer.Stop())
		assert.False(t, timer.Stop())
		c.Add(time.Hour)
		assert.False(t, fired)
		assert.Empty(t, c.Pending())
	})

	t.Run("zero delay fires on the next advance", func(t *testing.T) {
		c := clock.NewMockClock(t0)
		fired := false
		c.AfterFunc(0, func() { fired = true })

		assert.False(t, fired)
		c.Add(0)
		assert.True(t, fired)
	})

	t.Run("zero-delay timers scheduled by a callback fire in the same advance", func(t *testing.T) {
		c := clock.NewMockClock(t0)
		count := 0
		var schedule func()
		schedule = func() {
			count++
			if count < 3 {
				c.AfterFunc(0, schedule)
			}
		}
		c.AfterFunc(time.Second, schedule)

		c.Set(t0.Add(10 * time.Second))
		assert.Equal(t, 3, count)
	})
}

func TestRealClock(t *testing.T) {
	c := clock.NewRealClock()
	done := make(chan struct{})
	c.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
	assert.WithinDuration(t, time.Now(), c.Now(), time.Second)
}
