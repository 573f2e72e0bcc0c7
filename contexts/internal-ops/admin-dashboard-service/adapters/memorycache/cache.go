package memorycache

import (
	"sync"
	"time"
)

// DefaultTTL bounds dashboard staleness when no lifetime is configured.
const DefaultTTL = 60 * time.Second

// TTLCache is an in-process cache with per-entry expiry. Explicit
// invalidation from the owning contexts keeps reads fresh inside the TTL
// window; the TTL itself is the backstop for missed evictions.
type TTLCache struct {
	mu sync.RWMutex

	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

type entry struct {
	payload   []byte
	expiresAt time.Time
}

func NewTTLCache(ttl time.Duration) *TTLCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TTLCache{
		ttl:     ttl,
		now:     func() time.Time { return time.Now().UTC() },
		entries: make(map[string]entry),
	}
}

// SetNowFunc overrides the clock. Test hook.
func (c *TTLCache) SetNowFunc(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *TTLCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	item, exists := c.entries[key]
	now := c.now()
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}
	if now.After(item.expiresAt) {
		c.Invalidate(key)
		return nil, false
	}
	return append([]byte(nil), item.payload...), true
}

func (c *TTLCache) Put(key string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		payload:   append([]byte(nil), payload...),
		expiresAt: c.now().Add(c.ttl),
	}
}

func (c *TTLCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *TTLCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}
