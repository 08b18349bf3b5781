// Package snapshot keeps the latest pricing snapshot in memory so quotes do
// not read every rate table per request.
package snapshot

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/core/ports"
)

// Cache is a ports.PricingSnapshotProvider refreshed by the pricing snapshot
// job. Readers always see one complete pricing.Config.
type Cache struct {
	uowFactory ports.UnitOfWorkFactory
	current    atomic.Pointer[pricing.Config]
	loadMu     sync.Mutex
	logger     *slog.Logger
}

var _ ports.PricingSnapshotProvider = (*Cache)(nil)

func NewCache(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *Cache {
	return &Cache{
		uowFactory: uowFactory,
		logger:     logger.With("component", "pricing_snapshot_cache"),
	}
}

// Snapshot returns the cached snapshot, loading it on first use.
func (c *Cache) Snapshot(ctx context.Context) (*pricing.Config, error) {
	if cfg := c.current.Load(); cfg != nil {
		return cfg, nil
	}

	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	if cfg := c.current.Load(); cfg != nil {
		return cfg, nil
	}
	return c.load(ctx)
}

// Refresh reloads the rate tables. On failure the previous snapshot is kept.
func (c *Cache) Refresh(ctx context.Context) error {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	_, err := c.load(ctx)
	return err
}

func (c *Cache) load(ctx context.Context) (*pricing.Config, error) {
	cfg, err := c.uowFactory.Create().PricingConfigRepository().Get(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to load pricing snapshot", "error", err)
		return nil, err
	}

	c.current.Store(cfg)
	c.logger.DebugContext(ctx, "Pricing snapshot loaded", "cities", len(cfg.Cities()))
	return cfg, nil
}
