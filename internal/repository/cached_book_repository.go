package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/library-service/internal/domain"
)

const statisticsCacheKey = "library:book:statistics"

// cachedBookRepository decorates a BookRepository with a Redis read-through
// cache for the statistics aggregation. Catalog writes invalidate the cache.
// Cache failures degrade to the underlying store, never to request failures.
type cachedBookRepository struct {
	inner  BookRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedBookRepository wraps inner with statistics caching. A nil client
// returns inner unchanged.
func NewCachedBookRepository(inner BookRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) BookRepository {
	if client == nil {
		return inner
	}
	return &cachedBookRepository{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (r *cachedBookRepository) Create(ctx context.Context, book *domain.Book) error {
	if err := r.inner.Create(ctx, book); err != nil {
		return err
	}
	if err := r.client.Del(ctx, statisticsCacheKey).Err(); err != nil {
		r.logger.Warn("failed to invalidate statistics cache", zap.Error(err))
	}
	return nil
}

func (r *cachedBookRepository) GetStatistics(ctx context.Context) ([]CategoryCount, error) {
	cached, err := r.client.Get(ctx, statisticsCacheKey).Bytes()
	if err == nil {
		var stats []CategoryCount
		if err := json.Unmarshal(cached, &stats); err == nil {
			return stats, nil
		}
		r.logger.Warn("dropping unreadable statistics cache entry")
		_ = r.client.Del(ctx, statisticsCacheKey).Err()
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("statistics cache read failed", zap.Error(err))
	}

	stats, err := r.inner.GetStatistics(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := r.client.Set(ctx, statisticsCacheKey, payload, r.ttl).Err(); err != nil {
			r.logger.Warn("statistics cache write failed", zap.Error(err))
		}
	}
	return stats, nil
}
