// Copyright (c) 2026 Astrodaily Authors.
// All rights reserved. See LICENSE for details.

// horoscope.go provides a Valkey-backed cache of horoscope records keyed
// by (sign, date). Records are immutable once persisted, so entries are
// never invalidated; they simply expire. This keeps the common case (a
// sign already generated today) off the database entirely.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"astrodaily/internal/models"
)

const (
	// horoscopeKeyPrefix namespaces horoscope keys in Valkey.
	horoscopeKeyPrefix = "horoscope:"

	// DefaultHoroscopeTTL covers the rest of the day with margin; a new
	// date produces a new key, so precision does not matter.
	DefaultHoroscopeTTL = 26 * time.Hour
)

// HoroscopeCache caches persisted horoscope records in Valkey.
type HoroscopeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewHoroscopeCache creates a record cache backed by the given Valkey client.
func NewHoroscopeCache(client *redis.Client, ttl time.Duration) *HoroscopeCache {
	if ttl == 0 {
		ttl = DefaultHoroscopeTTL
	}
	return &HoroscopeCache{client: client, ttl: ttl}
}

// Get retrieves a cached record for (sign, date). A Valkey failure is
// treated as a miss: the database remains the source of truth.
func (c *HoroscopeCache) Get(ctx context.Context, sign models.Sign, date string) (*models.Horoscope, bool) {
	payload, err := c.client.Get(ctx, recordKey(sign, date)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("horoscope cache get error", "sign", sign, "date", date, "error", err)
		return nil, false
	}

	var h models.Horoscope
	if err := json.Unmarshal(payload, &h); err != nil {
		slog.Warn("horoscope cache decode error", "sign", sign, "date", date, "error", err)
		return nil, false
	}

	slog.Debug("horoscope cache hit", "sign", sign, "date", date)
	return &h, true
}

// Set stores a persisted record with the configured TTL. Failures are
// logged and ignored; the cache is best-effort.
func (c *HoroscopeCache) Set(ctx context.Context, h *models.Horoscope) {
	payload, err := json.Marshal(h)
	if err != nil {
		slog.Warn("horoscope cache encode error", "sign", h.Sign, "date", h.Date, "error", err)
		return
	}

	if err := c.client.Set(ctx, recordKey(h.Sign, h.Date), payload, c.ttl).Err(); err != nil {
		slog.Warn("horoscope cache set error", "sign", h.Sign, "date", h.Date, "error", err)
	}
}

// recordKey builds the Valkey key for a (sign, date) pair.
func recordKey(sign models.Sign, date string) string {
	return fmt.Sprintf("%s%s:%s", horoscopeKeyPrefix, sign, date)
}
