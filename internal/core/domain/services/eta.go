package services

import (
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"
)

// EtaEstimator is a domain service that produces a coarse delivery estimate
// for an in-flight order.
//
// The estimate is a fixed window per lifecycle stage, narrowed when the most
// recent tracking observation shows the package is already moving. It is a
// customer-facing promise, not a routing computation; terminal orders always
// estimate zero.
type EtaEstimator struct{}

// NewEtaEstimator creates a new EtaEstimator instance.
func NewEtaEstimator() EtaEstimator {
	return EtaEstimator{}
}

// Estimate returns the remaining-time window for the order given the latest
// known tracking location type. Orders in a terminal status return zero.
func (e EtaEstimator) Estimate(status order.Status, latest tracking.LocationType) time.Duration {
	if status.IsTerminal() {
		return 0
	}

	switch status {
	case order.Pending:
		return 24 * time.Hour
	case order.Processing:
		return 12 * time.Hour
	case order.Dispatched:
		if latest == tracking.LocationTypeTransit {
			return 3 * time.Hour
		}
		return 4 * time.Hour
	case order.OutForDelivery:
		return 2 * time.Hour
	default:
		return 0
	}
}

// EstimatedDeliveryAt anchors the Estimate window to the given clock reading.
func (e EtaEstimator) EstimatedDeliveryAt(status order.Status, latest tracking.LocationType, now time.Time) time.Time {
	return now.Add(e.Estimate(status, latest))
}
