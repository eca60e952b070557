package currency

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	cache := NewMemoryCache(time.Hour)
	cache.now = func() time.Time { return current }

	if _, ok := cache.Get(ctx, "USD/EUR"); ok {
		t.Fatalf("empty cache should miss")
	}

	if err := cache.Set(ctx, "USD/EUR", 0.92); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	rate, ok := cache.Get(ctx, "USD/EUR")
	if !ok || rate != 0.92 {
		t.Errorf("Get() = (%v, %v), expected (0.92, true)", rate, ok)
	}

	// Still fresh just before the TTL elapses.
	current = current.Add(59 * time.Minute)
	if _, ok := cache.Get(ctx, "USD/EUR"); !ok {
		t.Errorf("entry expired before its TTL")
	}

	// Expired after.
	current = current.Add(2 * time.Minute)
	if _, ok := cache.Get(ctx, "USD/EUR"); ok {
		t.Errorf("entry survived past its TTL")
	}
}

func TestMemoryCache_SetRefreshesExpiry(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	cache := NewMemoryCache(time.Hour)
	cache.now = func() time.Time { return current }

	_ = cache.Set(ctx, "USD/JPY", 150.0)
	current = current.Add(50 * time.Minute)
	_ = cache.Set(ctx, "USD/JPY", 151.0)

	// 70 minutes after the first write, 20 after the refresh.
	current = current.Add(20 * time.Minute)
	rate, ok := cache.Get(ctx, "USD/JPY")
	if !ok || rate != 151.0 {
		t.Errorf("Get() = (%v, %v), expected the refreshed entry", rate, ok)
	}
}

func TestMemoryCache_PairsAreIndependent(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Hour)

	_ = cache.Set(ctx, "USD/EUR", 0.92)
	_ = cache.Set(ctx, "EUR/USD", 1.09)

	if rate, _ := cache.Get(ctx, "USD/EUR"); rate != 0.92 {
		t.Errorf("USD/EUR = %v, expected 0.92", rate)
	}
	if rate, _ := cache.Get(ctx, "EUR/USD"); rate != 1.09 {
		t.Errorf("EUR/USD = %v, expected 1.09", rate)
	}
}
