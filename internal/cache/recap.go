// Package cache holds the optional Redis-backed cache for recap reports.
// When caching is disabled (the default) a no-op implementation is wired in
// and every report is rebuilt on request.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/purchasing-admin/backend-go/internal/config"
	"github.com/purchasing-admin/backend-go/internal/recap"
	"github.com/redis/go-redis/v9"
)

const (
	recapKeyPrefix  = "recap:yearly"
	scanBatchSize   = 100
	defaultRecapTTL = time.Minute
)

// RecapCache stores built yearly reports keyed by year and category filter.
type RecapCache interface {
	GetReport(ctx context.Context, year int, category string) (*recap.YearlyReport, bool, error)
	SetReport(ctx context.Context, year int, category string, report *recap.YearlyReport) error
	InvalidateAll(ctx context.Context) error
}

type redisRecapCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopRecapCache struct{}

// NewRecapCache returns a Redis-backed cache when caching is enabled in the
// config, otherwise a no-op cache. A failing ping is an error.
func NewRecapCache(cfg config.CacheConfig) (RecapCache, error) {
	if !cfg.Enabled {
		return &noopRecapCache{}, nil
	}

	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	ttl := time.Duration(cfg.RecapTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultRecapTTL
	}

	return &redisRecapCache{client: client, ttl: ttl}, nil
}

func NewNoopRecapCache() RecapCache {
	return &noopRecapCache{}
}

func buildRedisOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}

		return opts, nil
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}

func buildRecapKey(year int, category string) string {
	if category == "" {
		category = "-"
	}

	return fmt.Sprintf("%s:%d:%s", recapKeyPrefix, year, category)
}

func (c *redisRecapCache) GetReport(ctx context.Context, year int, category string) (*recap.YearlyReport, bool, error) {
	payload, err := c.client.Get(ctx, buildRecapKey(year, category)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var report recap.YearlyReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, false, fmt.Errorf("corrupt cached report: %w", err)
	}

	return &report, true, nil
}

func (c *redisRecapCache) SetReport(ctx context.Context, year int, category string, report *recap.YearlyReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := c.client.Set(ctx, buildRecapKey(year, category), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

// InvalidateAll removes every cached report. Called whenever a purchase is
// added so stale sums never reach the report page.
func (c *redisRecapCache) InvalidateAll(ctx context.Context) error {
	var cursor uint64
	pattern := recapKeyPrefix + ":*"

	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("redis scan failed: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del failed: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (n *noopRecapCache) GetReport(ctx context.Context, year int, category string) (*recap.YearlyReport, bool, error) {
	return nil, false, nil
}

func (n *noopRecapCache) SetReport(ctx context.Context, year int, category string, report *recap.YearlyReport) error {
	return nil
}

func (n *noopRecapCache) InvalidateAll(ctx context.Context) error {
	return nil
}
