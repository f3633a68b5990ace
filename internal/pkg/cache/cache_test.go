//go:build unit

package cache_test

import (
	"testing"
	"time"

	"hostboard/internal/pkg/cache"
	"hostboard/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*cache.Cache, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return cache.New(clk), clk
}

func TestCacheGetSet(t *testing.T) {
	t.Run("miss on empty cache", func(t *testing.T) {
		c, _ := newCache(t)

		_, ok := c.Get("reservations:user:42")
		assert.False(t, ok)
	})

	t.Run("hit within TTL", func(t *testing.T) {
		c, clk := newCache(t)
		c.Set("k", "v", 60*time.Second)

		clk.Advance(30 * time.Second)
		v, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, "v", v)
	})

	t.Run("expired entry behaves as absent", func(t *testing.T) {
		c, clk := newCache(t)
		c.Set("k", "v", 60*time.Second)

		clk.Advance(90 * time.Second)
		_, ok := c.Get("k")
		assert.False(t, ok)
	})

	t.Run("expiry boundary is exclusive", func(t *testing.T) {
		c, clk := newCache(t)
		c.Set("k", "v", 60*time.Second)

		clk.Advance(60 * time.Second)
		_, ok := c.Get("k")
		assert.False(t, ok)
	})

	t.Run("set refreshes creation time", func(t *testing.T) {
		c, clk := newCache(t)
		c.Set("k", "old", 60*time.Second)

		clk.Advance(50 * time.Second)
		c.Set("k", "new", 60*time.Second)

		clk.Advance(30 * time.Second)
		v, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, "new", v)
	})
}

func TestCacheInvalidation(t *testing.T) {
	t.Run("invalidate removes a live entry", func(t *testing.T) {
		c, _ := newCache(t)
		c.Set("k", "v", time.Hour)

		c.Invalidate("k")
		_, ok := c.Get("k")
		assert.False(t, ok)
	})

	t.Run("invalidate several keys at once", func(t *testing.T) {
		c, _ := newCache(t)
		c.Set("a", 1, time.Hour)
		c.Set("b", 2, time.Hour)
		c.Set("c", 3, time.Hour)

		c.Invalidate("a", "b", "missing")

		_, ok := c.Get("a")
		assert.False(t, ok)
		_, ok = c.Get("b")
		assert.False(t, ok)
		_, ok = c.Get("c")
		assert.True(t, ok)
	})

	t.Run("invalidate by prefix", func(t *testing.T) {
		c, _ := newCache(t)
		c.Set("reservations:user:1", 1, time.Hour)
		c.Set("reservations:user:2", 2, time.Hour)
		c.Set("media:property:1", 3, time.Hour)

		c.InvalidatePrefix("reservations:")

		_, ok := c.Get("reservations:user:1")
		assert.False(t, ok)
		_, ok = c.Get("reservations:user:2")
		assert.False(t, ok)
		_, ok = c.Get("media:property:1")
		assert.True(t, ok)
	})

	t.Run("clear drops everything", func(t *testing.T) {
		c, _ := newCache(t)
		c.Set("a", 1, time.Hour)
		c.Set("b", 2, time.Hour)

		c.Clear()

		_, ok := c.Get("a")
		assert.False(t, ok)
		_, ok = c.Get("b")
		assert.False(t, ok)
	})
}

func TestValueAs(t *testing.T) {
	t.Run("returns typed value", func(t *testing.T) {
		c, _ := newCache(t)
		c.Set("list", []int{1, 2, 3}, time.Hour)

		got, ok := cache.ValueAs[[]int](c, "list")
		require.True(t, ok)
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("type mismatch counts as miss", func(t *testing.T) {
		c, _ := newCache(t)
		c.Set("list", "not a slice", time.Hour)

		_, ok := cache.ValueAs[[]int](c, "list")
		assert.False(t, ok)
	})
}
