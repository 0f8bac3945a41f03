package controllers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/catalog"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/common"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/config"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/metrics"
)

// ErrStopped is the cancel cause used by Stop.
var ErrStopped = errors.New("compaction controller stopped")

// Compaction controller, periodically optimizes a shared catalog once enough of
// its slots are tombstones.
type CompactionController struct {
	ctx    context.Context
	cancel context.CancelCauseFunc

	store  catalog.Store
	config *config.CompactionConfig
	logger *slog.Logger
}

func NewCompactionController(ctx context.Context, store catalog.Store, config *config.CompactionConfig, logger *slog.Logger) *CompactionController {
	ctx, cancel := context.WithCancelCause(ctx)

	return &CompactionController{
		ctx:    ctx,
		cancel: cancel,
		store:  store,
		config: config,
		logger: logger.With(slog.String(common.LogService, common.ComponentController)),
	}
}

// Run blocks until the parent context is done or Stop is called.
func (c *CompactionController) Run() error {
	ticker := time.NewTicker(c.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			c.logger.Debug("Compaction controller exiting", slog.String(common.LogDetails, context.Cause(c.ctx).Error()))
			return nil
		case <-ticker.C:
			if removed := c.run(); removed > 0 {
				c.logger.Info("Compaction removed deleted entries",
					slog.String(common.LogOperation, common.OpCompaction), slog.Int(common.LogRemoved, removed))
			}
		}
	}
}

func (c *CompactionController) Stop() {
	c.cancel(ErrStopped)
}

// run performs one pass. The threshold check and the compaction happen under
// the same lock so no delete can slip in between.
func (c *CompactionController) run() int {
	removed := 0
	c.store.Do(func(cat *catalog.Catalog) {
		if !c.shouldCompact(cat.Usage()) {
			return
		}
		removed = cat.Optimize()
		metrics.RecordCompaction(removed)
	})
	return removed
}

func (c *CompactionController) shouldCompact(u catalog.Usage) bool {
	if u.Deleted == 0 || u.Deleted < c.config.MinDeleted {
		return false
	}
	return float64(u.Deleted)/float64(u.Entries) >= c.config.FragmentationThreshold
}
