package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/clientpulse/dashboard/internal/core/domain"
)

const (
	kpiPrefix     = "kpi:"
	defaultKPITTL = time.Minute
)

// KPICache stores KPI summaries as JSON shared by every API instance.
// Key format: kpi:<dataset_version>|<filter_key>
type KPICache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewKPICache wraps client. A non-positive ttl uses defaultKPITTL.
func NewKPICache(client *redis.Client, ttl time.Duration) *KPICache {
	if ttl <= 0 {
		ttl = defaultKPITTL
	}
	return &KPICache{client: client, ttl: ttl}
}

// Get returns ok=false when the key is absent or expired.
func (c *KPICache) Get(ctx context.Context, key string) (*domain.KPISummary, bool, error) {
	raw, err := c.client.Get(ctx, kpiPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("kpi cache get: %w", err)
	}

	var sum domain.KPISummary
	if err := json.Unmarshal(raw, &sum); err != nil {
		return nil, false, fmt.Errorf("kpi cache decode: %w", err)
	}
	return &sum, true, nil
}

// Set stores summary under key until the ttl expires.
func (c *KPICache) Set(ctx context.Context, key string, summary *domain.KPISummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("kpi cache encode: %w", err)
	}
	if err := c.client.Set(ctx, kpiPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("kpi cache set: %w", err)
	}
	return nil
}

// Ping checks the Redis connection for the readiness probe.
func (c *KPICache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
