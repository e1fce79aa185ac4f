// Package jobs provides scheduled background tasks for PharmacyGo.
//
// Jobs are cron schedules built on github.com/robfig/cron/v3 with seconds
// enabled:
//
//  1. OutboxPublishingJob runs every two seconds and forwards stored domain
//     events to the message bus. A batch still running when the next tick
//     fires is not overlapped.
//  2. StockAgingJob runs nightly at 03:00 and moves every stock line one
//     day closer to expiry.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(publishOutboxHandler, ageStockHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// Failures are logged and retried on the next tick.
package jobs
