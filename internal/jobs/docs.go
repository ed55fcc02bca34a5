// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. TransitSimulationJob - Runs every minute to replay a hub-to-transit
// journey onto dispatched orders, so tracking displays show movement between
// packing and the delivery leg
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager over the order store and the tracking ledger
//	jobManager := jobs.NewJobManager(orderRepository, trackingLedger, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The transit simulation uses the cron expression "0 * * * * *", firing at the
// top of every minute. Each dispatched order receives the simulated journey
// exactly once; later passes skip orders that already carry a transit event.
//
// # Error Handling
//
// - Per-order failures are logged and do not stop the rest of the pass
// - A failed read of the dispatched set fails the pass and is logged
package jobs
