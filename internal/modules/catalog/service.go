// README: Catalog service; serves versioned snapshots with a Redis cache in front of Postgres.
package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"roamcost/internal/logging"
)

const snapshotKey = "catalog:snapshot"

// Reader is the read side of the catalog store.
type Reader interface {
	ListCountries(ctx context.Context) ([]Country, error)
	ListRates(ctx context.Context) ([]RateEntry, error)
	ListPacks(ctx context.Context) ([]Pack, error)
	GetPack(ctx context.Context, id int64) (*Pack, error)
}

type Service struct {
	reader Reader
	cache  *redis.Client
	ttl    time.Duration
}

// NewService builds a catalog service. cache may be nil, in which case every
// snapshot is read straight from the store.
func NewService(reader Reader, cache *redis.Client, ttl time.Duration) *Service {
	return &Service{reader: reader, cache: cache, ttl: ttl}
}

// Snapshot returns a complete reference-data snapshot. The three collections
// are materialized before the caller sees any of them.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, snapshotKey).Bytes()
		if err == nil {
			var snap Snapshot
			if err := json.Unmarshal(raw, &snap); err == nil {
				return &snap, nil
			}
			// Corrupt cache entry; rebuild from the store.
			logging.Logger.Warn("catalog cache entry unreadable, rebuilding")
		}
	}

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(snap); err == nil {
			if err := s.cache.Set(ctx, snapshotKey, raw, s.ttl).Err(); err != nil {
				logging.Logger.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}
	return snap, nil
}

// FindPack resolves a pack by id for the recommendation explainer. Returns
// ErrNotFound on a miss.
func (s *Service) FindPack(ctx context.Context, id int64) (*Pack, error) {
	return s.reader.GetPack(ctx, id)
}

// Invalidate drops the cached snapshot so the next read sees fresh data.
func (s *Service) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, snapshotKey).Err(); err != nil {
		logging.Logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}

func (s *Service) load(ctx context.Context) (*Snapshot, error) {
	countries, err := s.reader.ListCountries(ctx)
	if err != nil {
		return nil, err
	}
	rates, err := s.reader.ListRates(ctx)
	if err != nil {
		return nil, err
	}
	packs, err := s.reader.ListPacks(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Version:   time.Now().UnixNano(),
		Countries: countries,
		Rates:     rates,
		Packs:     packs,
	}, nil
}
