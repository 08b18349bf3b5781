// Package jobs provides scheduled background tasks for the logistics service.
//
// Jobs are built on github.com/robfig/cron/v3 with second precision.
//
// # Available Jobs
//
// PricingSnapshotJob reloads the in-memory pricing snapshot used for quotes.
// It loads once on start and then follows its cron spec (every minute by
// default). Order creation does not depend on it: it reads the rate tables
// inside its own transaction.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(snapshotCache, cfg.SnapshotRefreshSpec, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and the previous snapshot stays in use.
package jobs
