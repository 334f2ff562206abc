package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestCache(capacity int, ttl time.Duration) (*LRUCache[string, int], *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewLRUCache[string, int](capacity, ttl)
	c.now = clock.Now
	return c, clock
}

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(t *testing.T, c *LRUCache[string, int], clock *fakeClock)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache[string, int], _ *fakeClock) {
				c.Set("a", 1)
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, 1, v)
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache[string, int], clock *fakeClock) {
				c.Set("a", 1)
				clock.Advance(2 * time.Minute)
				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Size())
			},
		},
		{
			name:     "evict oldest when over capacity",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache[string, int], _ *fakeClock) {
				c.Set("a", 1)
				c.Set("b", 2)
				c.Set("c", 3)
				_, ok := c.Get("a")
				assert.False(t, ok)
				v, ok := c.Get("b")
				assert.True(t, ok)
				assert.Equal(t, 2, v)
				v, ok = c.Get("c")
				assert.True(t, ok)
				assert.Equal(t, 3, v)
			},
		},
		{
			name:     "recently used survives eviction",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache[string, int], _ *fakeClock) {
				c.Set("a", 1)
				c.Set("b", 2)
				c.Get("a")
				c.Set("c", 3)
				_, ok := c.Get("b")
				assert.False(t, ok)
				_, ok = c.Get("a")
				assert.True(t, ok)
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache[string, int], clock *fakeClock) {
				c.Set("a", 1)
				clock.Advance(40 * time.Second)
				c.Set("a", 2)
				clock.Advance(40 * time.Second)
				v, ok := c.Get("a")
				assert.True(t, ok)
				assert.Equal(t, 2, v)
			},
		},
		{
			name:     "delete removes key",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache[string, int], _ *fakeClock) {
				c.Set("a", 1)
				c.Delete("a")
				_, ok := c.Get("a")
				assert.False(t, ok)
			},
		},
		{
			name:     "cleanup removes expired",
			capacity: 3,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRUCache[string, int], clock *fakeClock) {
				c.Set("a", 1)
				clock.Advance(30 * time.Second)
				c.Set("b", 2)
				clock.Advance(45 * time.Second)

				c.cleanup()

				assert.Equal(t, 1, c.Size())
				_, ok := c.Get("b")
				assert.True(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clock := newTestCache(tt.capacity, tt.ttl)
			tt.actions(t, c, clock)
		})
	}
}
