package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager owns the background jobs started by main.
type JobManager struct {
	pricingSnapshotJob *PricingSnapshotJob
}

// NewJobManager wires the pricing snapshot job to refresher on snapshotSpec.
func NewJobManager(refresher SnapshotRefresher, snapshotSpec string, logger *slog.Logger) *JobManager {
	return &JobManager{
		pricingSnapshotJob: NewPricingSnapshotJob(refresher, snapshotSpec, logger),
	}
}

// StartAll starts every job; the first failure is returned.
func (jm *JobManager) StartAll() error {
	if err := jm.pricingSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start pricing snapshot job: %w", err)
	}
	return nil
}

// StopAll blocks until running jobs have finished.
func (jm *JobManager) StopAll() {
	jm.pricingSnapshotJob.Stop()
}
