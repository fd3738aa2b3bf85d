package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/config"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	analyticsKeyPrefix = "analytics:"
	dashboardKey       = analyticsKeyPrefix + "dashboard"
	procurementKey     = analyticsKeyPrefix + "procurement"
	analyticsScanBatch = 100
)

// AnalyticsCache holds short-lived copies of the derived analytics views.
// The views stay pure functions of the stored rows; the cache only avoids
// recomputing them on every dashboard poll, and any write path invalidates
// it wholesale.
type AnalyticsCache interface {
	GetDashboard(ctx context.Context) (*domain.AnalyticsDashboard, bool, error)
	SetDashboard(ctx context.Context, dashboard *domain.AnalyticsDashboard) error
	GetProcurement(ctx context.Context) ([]domain.ProcurementItem, bool, error)
	SetProcurement(ctx context.Context, items []domain.ProcurementItem) error
	InvalidateAll(ctx context.Context) error
}

type redisAnalyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopAnalyticsCache struct{}

func NewAnalyticsCache(cfg config.CacheConfig) (AnalyticsCache, error) {
	if !cfg.Enabled {
		return &noopAnalyticsCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisAnalyticsCache{client: client, ttl: ttl}, nil
}

func NewNoopAnalyticsCache() AnalyticsCache {
	return &noopAnalyticsCache{}
}

func (c *redisAnalyticsCache) GetDashboard(ctx context.Context) (*domain.AnalyticsDashboard, bool, error) {
	payload, err := c.client.Get(ctx, dashboardKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var dashboard domain.AnalyticsDashboard
	if err := json.Unmarshal(payload, &dashboard); err != nil {
		return nil, false, fmt.Errorf("decode dashboard cache: %w", err)
	}

	return &dashboard, true, nil
}

func (c *redisAnalyticsCache) SetDashboard(ctx context.Context, dashboard *domain.AnalyticsDashboard) error {
	payload, err := json.Marshal(dashboard)
	if err != nil {
		return fmt.Errorf("encode dashboard cache: %w", err)
	}

	if err := c.client.Set(ctx, dashboardKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisAnalyticsCache) GetProcurement(ctx context.Context) ([]domain.ProcurementItem, bool, error) {
	payload, err := c.client.Get(ctx, procurementKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var items []domain.ProcurementItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, false, fmt.Errorf("decode procurement cache: %w", err)
	}

	return items, true, nil
}

func (c *redisAnalyticsCache) SetProcurement(ctx context.Context, items []domain.ProcurementItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode procurement cache: %w", err)
	}

	if err := c.client.Set(ctx, procurementKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisAnalyticsCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, analyticsKeyPrefix, analyticsScanBatch)
}

func (n *noopAnalyticsCache) GetDashboard(ctx context.Context) (*domain.AnalyticsDashboard, bool, error) {
	return nil, false, nil
}

func (n *noopAnalyticsCache) SetDashboard(ctx context.Context, dashboard *domain.AnalyticsDashboard) error {
	return nil
}

func (n *noopAnalyticsCache) GetProcurement(ctx context.Context) ([]domain.ProcurementItem, bool, error) {
	return nil, false, nil
}

func (n *noopAnalyticsCache) SetProcurement(ctx context.Context, items []domain.ProcurementItem) error {
	return nil
}

func (n *noopAnalyticsCache) InvalidateAll(ctx context.Context) error {
	return nil
}
