package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"link-tracker/internal/domain"
	"link-tracker/internal/metrics"

	goredis "github.com/redis/go-redis/v9"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	linkCachePrefix     = "link:"
	DefaultLinkCacheTTL = 10 * time.Minute

	// invalidatedMarker replaces an invalidated entry for InvalidationHold so
	// a read that started before the write cannot cache the old row again.
	invalidatedMarker = "-"
	InvalidationHold  = 5 * time.Second
)

// LinkCache caches links by short code.
// Implementations treat errors as misses and return nil, nil.
type LinkCache interface {
	// Get returns nil, nil on a cache miss.
	Get(ctx context.Context, code string) (*domain.TrackedLink, error)

	// Set caches link unless its code was invalidated within InvalidationHold.
	Set(ctx context.Context, link *domain.TrackedLink) error

	// Invalidate drops the entries for the given short codes.
	Invalidate(ctx context.Context, codes ...string) error
}

// Compile-time interface checks
var (
	_ LinkCache = (*RedisLinkCache)(nil)
	_ LinkCache = (*noopLinkCache)(nil)
)

// RedisLinkCache implements LinkCache using Redis.
type RedisLinkCache struct {
	rdb    *goredis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewLinkCache creates a Redis-backed cache.
// Returns a no-op cache if the Redis client is nil.
func NewLinkCache(rdb *goredis.Client, ttl time.Duration, logger *zap.Logger) LinkCache {
	if rdb == nil {
		return &noopLinkCache{}
	}
	if ttl <= 0 {
		ttl = DefaultLinkCacheTTL
	}
	return &RedisLinkCache{rdb: rdb, ttl: ttl, logger: logger}
}

// cachedLink is the serialization format for cached links.
type cachedLink struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	DestinationURL string     `json:"destination_url"`
	ShortCode      string     `json:"short_code"`
	Campaign       string     `json:"campaign"`
	Status         string     `json:"status"`
	TotalClicks    int64      `json:"total_clicks"`
	UniqueVisitors int64      `json:"unique_visitors"`
	LastClickedAt  *time.Time `json:"last_clicked_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func cacheKey(code string) string {
	return linkCachePrefix + code
}

func (c *RedisLinkCache) Get(ctx context.Context, code string) (*domain.TrackedLink, error) {
	data, err := c.rdb.Get(ctx, cacheKey(code)).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.logger.Warn("failed to get link from cache", zap.String("short_code", code), zap.Error(err))
		}
		metrics.CacheMiss.WithLabelValues("link").Inc()
		return nil, nil
	}

	if string(data) == invalidatedMarker {
		metrics.CacheMiss.WithLabelValues("link").Inc()
		return nil, nil
	}

	var cached cachedLink
	if err := json.Unmarshal(data, &cached); err != nil {
		c.logger.Warn("failed to unmarshal cached link", zap.String("short_code", code), zap.Error(err))
		metrics.CacheMiss.WithLabelValues("link").Inc()
		return nil, nil
	}

	metrics.CacheHit.WithLabelValues("link").Inc()
	return &domain.TrackedLink{
		ID:             cached.ID,
		Title:          cached.Title,
		DestinationURL: cached.DestinationURL,
		ShortCode:      cached.ShortCode,
		Campaign:       cached.Campaign,
		Status:         domain.LinkStatus(cached.Status),
		TotalClicks:    cached.TotalClicks,
		UniqueVisitors: cached.UniqueVisitors,
		LastClickedAt:  cached.LastClickedAt,
		CreatedAt:      cached.CreatedAt,
		UpdatedAt:      cached.UpdatedAt,
	}, nil
}

func (c *RedisLinkCache) Set(ctx context.Context, link *domain.TrackedLink) error {
	data, err := json.Marshal(cachedLink{
		ID:             link.ID,
		Title:          link.Title,
		DestinationURL: link.DestinationURL,
		ShortCode:      link.ShortCode,
		Campaign:       link.Campaign,
		Status:         string(link.Status),
		TotalClicks:    link.TotalClicks,
		UniqueVisitors: link.UniqueVisitors,
		LastClickedAt:  link.LastClickedAt,
		CreatedAt:      link.CreatedAt,
		UpdatedAt:      link.UpdatedAt,
	})
	if err != nil {
		c.logger.Warn("failed to marshal link for cache", zap.Error(err))
		return nil
	}

	if err := c.rdb.SetNX(ctx, cacheKey(link.ShortCode), data, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to cache link", zap.String("short_code", link.ShortCode), zap.Error(err))
	}
	return nil
}

func (c *RedisLinkCache) Invalidate(ctx context.Context, codes ...string) error {
	keys := lo.Map(lo.Uniq(lo.Compact(codes)), func(code string, _ int) string {
		return cacheKey(code)
	})
	if len(keys) == 0 {
		return nil
	}
	_, err := c.rdb.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, key := range keys {
			pipe.Set(ctx, key, invalidatedMarker, InvalidationHold)
		}
		return nil
	})
	if err != nil {
		c.logger.Warn("failed to invalidate link cache", zap.Strings("keys", keys), zap.Error(err))
	}
	return nil
}

// noopLinkCache is used when Redis is not configured.
type noopLinkCache struct{}

func (noopLinkCache) Get(context.Context, string) (*domain.TrackedLink, error) {
	return nil, nil
}

func (noopLinkCache) Set(context.Context, *domain.TrackedLink) error {
	return nil
}

func (noopLinkCache) Invalidate(context.Context, ...string) error {
	return nil
}
