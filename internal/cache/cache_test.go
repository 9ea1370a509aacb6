package cache

import (
	"testing"
	"time"
)

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time {
	return c.now
}

func newTestCache(ttl time.Duration) (*Cache, *manualClock) {
	clock := &manualClock{now: time.Unix(1_700_000_000, 0)}
	return New(ttl, WithClock(clock.Now)), clock
}

func TestGetReturnsStoredPayloadBeforeExpiry(t *testing.T) {
	c, clock := newTestCache(time.Minute)
	c.Set("k", "payload", 0)

	clock.now = clock.now.Add(59 * time.Second)
	got, ok := c.Get("k")
	if !ok || got != "payload" {
		t.Fatalf("expected hit before expiry, got %v/%v", got, ok)
	}
}

func TestGetEvictsExpiredEntryLazily(t *testing.T) {
	c, clock := newTestCache(time.Minute)
	c.Set("k", "payload", 0)

	clock.now = clock.now.Add(time.Minute)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected miss at exact expiry instant")
	}
	if c.Len() != 0 {
		t.Fatalf("expected expired entry evicted on read, Len=%d", c.Len())
	}
}

func TestExpiredEntryStaysUntilRead(t *testing.T) {
	c, clock := newTestCache(time.Minute)
	c.Set("k", "payload", 0)
	clock.now = clock.now.Add(2 * time.Minute)
	if c.Len() != 1 {
		t.Fatalf("expected no background sweep, Len=%d", c.Len())
	}
}

func TestSetHonorsPerEntryTTL(t *testing.T) {
	c, clock := newTestCache(time.Hour)
	c.Set("short", 1, time.Second)
	c.Set("long", 2, 0)

	clock.now = clock.now.Add(2 * time.Second)
	if _, ok := c.Get("short"); ok {
		t.Fatal("expected short entry expired")
	}
	if _, ok := c.Get("long"); !ok {
		t.Fatal("expected long entry alive under default TTL")
	}
}

func TestInvalidateSelectedAndAll(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	c.Set("a", 1, 0)
	c.Set("b", 2, 0)
	c.Set("c", 3, 0)

	c.Invalidate("a")
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected a invalidated")
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries left, got %d", c.Len())
	}

	c.Invalidate()
	if c.Len() != 0 {
		t.Fatalf("expected full clear, got %d", c.Len())
	}
}

func TestKeyForDistinguishesHeaders(t *testing.T) {
	base := KeyFor("document", "https://example.com/menu.json", nil)
	withAuth := KeyFor("document", "https://example.com/menu.json", map[string]string{"Authorization": "Bearer x"})
	if base == withAuth {
		t.Fatal("expected header-bearing source to get its own key")
	}
}

func TestKeyForHeaderOrderIrrelevant(t *testing.T) {
	a := KeyFor("remoteApi", "https://example.com/api", map[string]string{
		"Accept":        "application/json",
		"Authorization": "Bearer x",
	})
	b := KeyFor("remoteApi", "https://example.com/api", map[string]string{
		"Authorization": "Bearer x",
		"Accept":        "application/json",
	})
	if a != b {
		t.Fatal("expected identical keys regardless of header map order")
	}
}
