package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const defaultSweepInterval = 2 * time.Minute

type slot struct {
	key      string
	data     []byte
	deadline time.Time
}

func (s *slot) expired(now time.Time) bool {
	return now.After(s.deadline)
}

// LRUCache keeps serialized orders in process memory. Entries expire after
// ttl and the least recently read entry is dropped once capacity is reached.
// A capacity of zero or less disables the size bound.
//
// The cache is local to one process. Deployments running several API
// instances should use RedisCache so a status change is seen by all of them.
type LRUCache struct {
	mu       sync.Mutex
	order    *list.List
	index    map[string]*list.Element
	capacity int
	ttl      time.Duration
	sweep    time.Duration
	now      func() time.Time
}

func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		order:    list.New(),
		index:    make(map[string]*list.Element, max(capacity, 0)),
		capacity: capacity,
		ttl:      ttl,
		sweep:    defaultSweepInterval,
		now:      time.Now,
	}
}

// Get returns a copy of the cached bytes so callers may keep or modify them.
func (c *LRUCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		return nil, false
	}
	s := el.Value.(*slot)
	if s.expired(c.now()) {
		c.drop(el)
		return nil, false
	}
	c.order.MoveToFront(el)
	return append([]byte(nil), s.data...), true
}

// Set stores value under key and restarts its ttl.
func (c *LRUCache) Set(_ context.Context, key string, value []byte) {
	data := append([]byte(nil), value...)
	deadline := c.now().Add(c.ttl)

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		s := el.Value.(*slot)
		s.data, s.deadline = data, deadline
		c.order.MoveToFront(el)
		return
	}

	c.index[key] = c.order.PushFront(&slot{key: key, data: data, deadline: deadline})
	for c.capacity > 0 && c.order.Len() > c.capacity {
		c.drop(c.order.Back())
	}
}

func (c *LRUCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		c.drop(el)
	}
}

// Size counts stored entries, including expired ones not yet swept.
func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Start sweeps expired entries in the background until ctx is canceled.
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(c.sweep)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.cleanup()
			}
		}
	}()
	return nil
}

func (c *LRUCache) cleanup() {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		if el.Value.(*slot).expired(now) {
			c.drop(el)
		}
		el = next
	}
}

// drop must be called with mu held.
func (c *LRUCache) drop(el *list.Element) {
	c.order.Remove(el)
	delete(c.index, el.Value.(*slot).key)
}
