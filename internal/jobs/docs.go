// Package jobs provides scheduled background tasks for the pizza shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// KitchenJob runs AdvanceOrders on a cron schedule, moving every unready order
// one phase forward per round. Orders in Preparing may fall back to Pending.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	kitchen := jobs.NewKitchenJob(&advanceOrdersHandler, "*/5 * * * * *", logger)
//	jobManager := jobs.NewJobManager(logger, kitchen)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six fields with seconds first. Overlapping rounds are skipped.
//
// # Error Handling
//
// Failed rounds are logged and retried on the next tick. A failed start stops
// any jobs that are already running.
package jobs
