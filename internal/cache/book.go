// Package cache holds read-through caches for catalogue lookups.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stpnv0/LibraryBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const bookKeyPrefix = "library:book:"

func bookKey(id string) string {
	return bookKeyPrefix + id
}

// BookCache stores book snapshots in Redis. Failures are logged and treated
// as misses so the database stays the source of truth.
type BookCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewBookCache(client *redis.Client, ttl time.Duration, logger logger.Logger) *BookCache {
	return &BookCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *BookCache) Get(ctx context.Context, id string) (*domain.Book, bool) {
	data, err := c.client.Get(ctx, bookKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("book cache get failed",
				logger.String("book_id", id),
				logger.String("error", err.Error()),
			)
		}
		return nil, false
	}

	var b domain.Book
	if err = json.Unmarshal(data, &b); err != nil {
		c.logger.Warn("book cache entry is corrupt",
			logger.String("book_id", id),
			logger.String("error", err.Error()),
		)
		return nil, false
	}

	return &b, true
}

func (c *BookCache) Set(ctx context.Context, b *domain.Book) {
	data, err := json.Marshal(b)
	if err != nil {
		return
	}
	if err = c.client.Set(ctx, bookKey(b.ID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("book cache set failed",
			logger.String("book_id", b.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (c *BookCache) Invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, bookKey(id)).Err(); err != nil {
		c.logger.Warn("book cache invalidate failed",
			logger.String("book_id", id),
			logger.String("error", err.Error()),
		)
	}
}

// Noop is used when no Redis address is configured.
type Noop struct{}

func (Noop) Get(context.Context, string) (*domain.Book, bool) { return nil, false }

func (Noop) Set(context.Context, *domain.Book) {}

func (Noop) Invalidate(context.Context, string) {}
