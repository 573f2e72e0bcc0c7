package memorycache

import (
	"testing"
	"time"
)

func TestGetReturnsStoredPayloadWithinTTL(t *testing.T) {
	cache := NewTTLCache(time.Minute)
	cache.Put("admin:campaigns", []byte(`["a"]`))

	payload, hit := cache.Get("admin:campaigns")
	if !hit {
		t.Fatalf("expected a hit inside the TTL window")
	}
	if string(payload) != `["a"]` {
		t.Fatalf("unexpected payload %q", payload)
	}
}

func TestGetMissesAfterExpiry(t *testing.T) {
	cache := NewTTLCache(time.Minute)
	base := time.Date(2026, time.March, 6, 9, 0, 0, 0, time.UTC)
	now := base
	cache.SetNowFunc(func() time.Time { return now })

	cache.Put("admin:reviews", []byte(`[]`))
	now = base.Add(2 * time.Minute)

	if _, hit := cache.Get("admin:reviews"); hit {
		t.Fatalf("expected a miss after the TTL elapsed")
	}
}

func TestInvalidateEvictsSingleKey(t *testing.T) {
	cache := NewTTLCache(time.Minute)
	cache.Put("admin:campaigns", []byte(`1`))
	cache.Put("admin:donations", []byte(`2`))

	cache.Invalidate("admin:campaigns")

	if _, hit := cache.Get("admin:campaigns"); hit {
		t.Fatalf("invalidated key must miss")
	}
	if _, hit := cache.Get("admin:donations"); !hit {
		t.Fatalf("other keys must survive a single invalidation")
	}
}

func TestInvalidateAllEvictsEverything(t *testing.T) {
	cache := NewTTLCache(time.Minute)
	cache.Put("admin:campaigns", []byte(`1`))
	cache.Put("admin:profiles", []byte(`2`))

	cache.InvalidateAll()

	if _, hit := cache.Get("admin:campaigns"); hit {
		t.Fatalf("expected empty cache after InvalidateAll")
	}
	if _, hit := cache.Get("admin:profiles"); hit {
		t.Fatalf("expected empty cache after InvalidateAll")
	}
}

func TestPutCopiesPayload(t *testing.T) {
	cache := NewTTLCache(time.Minute)
	payload := []byte(`original`)
	cache.Put("admin:campaigns", payload)
	payload[0] = 'X'

	stored, _ := cache.Get("admin:campaigns")
	if string(stored) != "original" {
		t.Fatalf("cache must hold its own copy, got %q", stored)
	}
}
