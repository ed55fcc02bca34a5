package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	transitSimulationJob *TransitSimulationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	orders ports.OrderRepository,
	ledger ports.TrackingLedger,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		transitSimulationJob: NewTransitSimulationJob(orders, ledger, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.transitSimulationJob.Start(); err != nil {
		return fmt.Errorf("failed to start transit simulation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.transitSimulationJob.Stop()
}
