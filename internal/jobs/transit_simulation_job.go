package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// TransitSimulationJob replays a hub-to-transit journey onto dispatched
// orders so tracking displays have movement to show between packing and the
// delivery leg. Runs every minute; each order gets the journey exactly once.
type TransitSimulationJob struct {
	orders ports.OrderRepository
	ledger ports.TrackingLedger
	cron   *cron.Cron
	logger *slog.Logger
}

// NewTransitSimulationJob creates the job over the order store and the
// tracking ledger.
func NewTransitSimulationJob(orders ports.OrderRepository, ledger ports.TrackingLedger, logger *slog.Logger) *TransitSimulationJob {
	return &TransitSimulationJob{
		orders: orders,
		ledger: ledger,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "transit_simulation_job"),
	}
}

// Start begins the transit simulation job to run every minute.
func (j *TransitSimulationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Transit simulation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Transit simulation job started (running every minute)")
	return nil
}

// Stop stops the transit simulation job.
func (j *TransitSimulationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Transit simulation job stopped")
}

// Run performs one pass: every dispatched order that has not yet received the
// simulated journey gets it appended in a single batch. Per-order failures
// are logged and do not stop the pass.
func (j *TransitSimulationJob) Run(ctx context.Context) error {
	dispatched, err := j.orders.GetAllInStatus(ctx, order.Dispatched)
	if err != nil {
		return err
	}

	for _, aggregate := range dispatched {
		simulated, err := j.hasTransitEvents(ctx, aggregate)
		if err != nil {
			j.logger.WarnContext(ctx, "Transit check failed",
				"orderId", aggregate.ID().String(), "error", err)
			continue
		}
		if simulated {
			continue
		}

		if err = j.appendJourney(ctx, aggregate); err != nil {
			j.logger.WarnContext(ctx, "Transit journey append failed",
				"orderId", aggregate.ID().String(), "error", err)
		}
	}

	return nil
}

func (j *TransitSimulationJob) hasTransitEvents(ctx context.Context, aggregate *order.Order) (bool, error) {
	events, err := j.ledger.ListByOrder(ctx, aggregate.ID())
	if err != nil {
		return false, err
	}

	for _, event := range events {
		if event.LocationType() == tracking.LocationTypeTransit {
			return true, nil
		}
	}
	return false, nil
}

func (j *TransitSimulationJob) appendJourney(ctx context.Context, aggregate *order.Order) error {
	hub := aggregate.Tracking().RegionalHub
	status := order.Dispatched.String()

	// Zero timestamps: the ledger stamps them strictly increasing on append.
	legs := []struct {
		description  string
		location     string
		locationType tracking.LocationType
	}{
		{"Left the fulfillment warehouse", "", tracking.LocationTypeWarehouse},
		{"Arrived at regional hub", hub, tracking.LocationTypeTransit},
		{"In transit to the delivery area", hub, tracking.LocationTypeTransit},
	}

	journey := make([]tracking.Event, 0, len(legs))
	for _, leg := range legs {
		event, err := tracking.NewEvent(aggregate.ID(), status, leg.description,
			leg.location, leg.locationType, time.Time{})
		if err != nil {
			return err
		}
		journey = append(journey, event)
	}

	return j.ledger.AppendBatch(ctx, journey)
}
