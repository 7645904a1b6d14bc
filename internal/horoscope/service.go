// Copyright (c) 2026 Astrodaily Authors.
// All rights reserved. See LICENSE for details.

package horoscope

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"astrodaily/internal/models"
	"astrodaily/internal/store"
)

// Store is the persistence contract the service depends on. Satisfied by
// *store.HoroscopeStore.
type Store interface {
	FindBySignDate(sign models.Sign, date string) (*models.Horoscope, error)
	Insert(h *models.Horoscope) (*models.Horoscope, error)
}

// ContentGenerator is the generation contract the service depends on.
// Satisfied by *Generator; tests substitute stubs.
type ContentGenerator interface {
	Generate(ctx context.Context, sign models.Sign, date string) (*GeneratedContent, error)
}

// RecordCache is an optional read-through cache in front of the database.
// Records are immutable once created, so cached entries never go stale.
type RecordCache interface {
	Get(ctx context.Context, sign models.Sign, date string) (*models.Horoscope, bool)
	Set(ctx context.Context, h *models.Horoscope)
}

// Service implements the fetch-or-create operation. It holds no mutable
// state of its own: idempotence under concurrent requests is delegated
// entirely to the database's unique (sign, date) constraint plus a single
// re-read when an insert loses the race.
type Service struct {
	store     Store
	generator ContentGenerator
	cache     RecordCache // may be nil
}

// NewService creates a Service. cache may be nil to disable the Valkey
// read-through layer.
func NewService(s Store, g ContentGenerator, cache RecordCache) *Service {
	return &Service{store: s, generator: g, cache: cache}
}

// FetchOrCreate returns the horoscope for (sign, date), generating and
// persisting it on first request. Concurrent first requests may each call
// the generator (wasted work, accepted), but exactly one insert wins;
// losers resolve the duplicate by re-reading, never by regenerating.
func (s *Service) FetchOrCreate(ctx context.Context, sign models.Sign, date string) (*models.Horoscope, error) {
	if s.cache != nil {
		if h, ok := s.cache.Get(ctx, sign, date); ok {
			return h, nil
		}
	}

	existing, err := s.store.FindBySignDate(sign, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if s.cache != nil {
			s.cache.Set(ctx, existing)
		}
		return existing, nil
	}

	content, err := s.generator.Generate(ctx, sign, date)
	if err != nil {
		return nil, err
	}

	record := &models.Horoscope{
		Sign:      sign,
		Date:      date,
		ShortText: strings.TrimSpace(content.Short),
		LongText:  FormatLongText(&content.Long),
	}

	inserted, err := s.store.Insert(record)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// A concurrent request created the record first. Re-read once;
			// the generator is not invoked again.
			winner, findErr := s.store.FindBySignDate(sign, date)
			if findErr != nil {
				return nil, fmt.Errorf("fetch horoscope after duplicate insert: %w", findErr)
			}
			if winner == nil {
				return nil, fmt.Errorf("fetch horoscope after duplicate insert: record missing for %s/%s", sign, date)
			}
			if s.cache != nil {
				s.cache.Set(ctx, winner)
			}
			return winner, nil
		}
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, inserted)
	}
	return inserted, nil
}
