package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultSnapshotRefreshSpec refreshes the pricing snapshot every minute.
const DefaultSnapshotRefreshSpec = "0 * * * * *"

// SnapshotRefresher reloads a cached pricing snapshot.
type SnapshotRefresher interface {
	Refresh(ctx context.Context) error
}

// PricingSnapshotJob keeps the quote-time pricing snapshot in line with the
// rate tables.
type PricingSnapshotJob struct {
	refresher SnapshotRefresher
	spec      string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPricingSnapshotJob creates the job. spec is a six field cron expression
// (seconds first) or a descriptor such as "@every 30s"; blank means
// DefaultSnapshotRefreshSpec.
func NewPricingSnapshotJob(refresher SnapshotRefresher, spec string, logger *slog.Logger) *PricingSnapshotJob {
	if spec == "" {
		spec = DefaultSnapshotRefreshSpec
	}
	return &PricingSnapshotJob{
		refresher: refresher,
		spec:      spec,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "pricing_snapshot_job"),
	}
}

// Start loads the snapshot once and schedules further refreshes. A failing
// first load is logged; the cache then loads lazily on the first quote.
func (j *PricingSnapshotJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, j.refresh)
	if err != nil {
		return err
	}

	j.refresh()

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pricing snapshot job started", "spec", j.spec)
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (j *PricingSnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pricing snapshot job stopped")
}

func (j *PricingSnapshotJob) refresh() {
	ctx := context.Background()
	if err := j.refresher.Refresh(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Pricing snapshot refresh failed", "error", err)
	}
}
