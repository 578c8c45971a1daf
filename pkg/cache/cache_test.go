package cache

import (
	"context"
	"strconv"
	"testing"
	"time"
)

func TestLRUCache(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache, t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set(ctx, "order:1", []byte("1"))
				if v, ok := c.Get(ctx, "order:1"); !ok || string(v) != "1" {
					t.Errorf("expected value=1, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set(ctx, "order:1", []byte("1"))
				time.Sleep(time.Millisecond * 60)
				if _, ok := c.Get(ctx, "order:1"); ok {
					t.Errorf("expected key to be expired")
				}
			},
		},
		{
			name:     "evict least recently used when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set(ctx, "order:1", []byte("1"))
				c.Set(ctx, "order:2", []byte("2"))
				c.Get(ctx, "order:1")
				c.Set(ctx, "order:3", []byte("3"))
				if _, ok := c.Get(ctx, "order:2"); ok {
					t.Errorf("expected key 'order:2' to be evicted")
				}
				if v, ok := c.Get(ctx, "order:1"); !ok || string(v) != "1" {
					t.Errorf("expected order:1=1, got %v", v)
				}
				if v, ok := c.Get(ctx, "order:3"); !ok || string(v) != "3" {
					t.Errorf("expected order:3=3, got %v", v)
				}
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set(ctx, "order:1", []byte("1"))
				time.Sleep(time.Millisecond * 30)
				c.Set(ctx, "order:1", []byte("2"))
				time.Sleep(time.Millisecond * 30)
				if v, ok := c.Get(ctx, "order:1"); !ok || string(v) != "2" {
					t.Errorf("expected updated value=2, got=%v", v)
				}
			},
		},
		{
			name:     "delete removes key",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set(ctx, "order:1", []byte("1"))
				c.Delete(ctx, "order:1")
				c.Delete(ctx, "order:missing")
				if _, ok := c.Get(ctx, "order:1"); ok {
					t.Errorf("expected key to be deleted")
				}
				if c.Size() != 0 {
					t.Errorf("expected empty cache, got size=%d", c.Size())
				}
			},
		},
		{
			name:     "returned bytes are a copy",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				src := []byte("abc")
				c.Set(ctx, "order:1", src)
				src[0] = 'x'

				v, _ := c.Get(ctx, "order:1")
				v[1] = 'y'

				if v, ok := c.Get(ctx, "order:1"); !ok || string(v) != "abc" {
					t.Errorf("expected stored value=abc, got=%s", v)
				}
			},
		},
		{
			name:     "non-positive capacity is unbounded",
			capacity: 0,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				for i := 0; i < 100; i++ {
					c.Set(ctx, "order:"+strconv.Itoa(i), []byte("v"))
				}
				if c.Size() != 100 {
					t.Errorf("expected size=100, got=%d", c.Size())
				}
			},
		},
		{
			name:     "expiry follows the clock",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(c *LRUCache, t *testing.T) {
				now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
				c.now = func() time.Time { return now }

				c.Set(ctx, "order:1", []byte("1"))
				now = now.Add(59 * time.Second)
				if _, ok := c.Get(ctx, "order:1"); !ok {
					t.Errorf("expected key to be alive before ttl")
				}
				now = now.Add(2 * time.Second)
				c.cleanup()
				if c.Size() != 0 {
					t.Errorf("expected sweep to drop expired key, size=%d", c.Size())
				}
			},
		},
		{
			name:     "janitor removes expired",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache, t *testing.T) {
				jctx, cancel := context.WithCancel(ctx)
				defer cancel()
				if err := c.Start(jctx); err != nil {
					t.Fatalf("unexpected start error: %v", err)
				}

				c.Set(ctx, "order:1", []byte("1"))
				time.Sleep(time.Millisecond * 60)

				c.cleanup()

				if c.Size() != 0 {
					t.Errorf("expected janitor cleanup to remove expired key")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLRUCache(tt.capacity, tt.ttl)
			tt.actions(c, t)
		})
	}
}
