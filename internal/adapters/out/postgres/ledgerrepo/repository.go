package ledgerrepo

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.TrackingLedger = (*GormTrackingLedger)(nil)

// GormTrackingLedger provides PostgreSQL-backed persistence for the
// append-only tracking ledger.
type GormTrackingLedger struct {
	db *gorm.DB
}

// NewGormTrackingLedger creates a ledger bound to the given connection.
func NewGormTrackingLedger(db *gorm.DB) *GormTrackingLedger {
	return &GormTrackingLedger{db: db}
}

// Append persists a single tracking event. An event carrying a zero timestamp
// is stamped with the current time on write.
func (l *GormTrackingLedger) Append(ctx context.Context, event tracking.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	if event.Timestamp().IsZero() {
		event = event.WithTimestamp(time.Now().UTC())
	}

	dto := fromDomain(event)
	if err := l.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("append tracking event for order %s: %w", event.OrderID(), err)
	}

	return nil
}

// AppendBatch persists a batch of events in one insert. Events carrying a
// zero timestamp are stamped with strictly increasing times, one millisecond
// apart, so the batch reads back in the order it was appended.
func (l *GormTrackingLedger) AppendBatch(ctx context.Context, events []tracking.Event) error {
	if len(events) == 0 {
		return nil
	}

	base := time.Now().UTC()
	dtos := make([]EventDTO, 0, len(events))
	for i, event := range events {
		if err := event.Validate(); err != nil {
			return err
		}
		if event.Timestamp().IsZero() {
			event = event.WithTimestamp(base.Add(time.Duration(i) * time.Millisecond))
		}
		dtos = append(dtos, fromDomain(event))
	}

	if err := l.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return fmt.Errorf("append tracking event batch: %w", err)
	}

	return nil
}

// ListByOrder retrieves all events for the order, oldest first. An order
// without events yields an empty slice.
func (l *GormTrackingLedger) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]tracking.Event, error) {
	var dtos []EventDTO
	result := l.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("timestamp").
		Find(&dtos)
	if result.Error != nil {
		return nil, fmt.Errorf("list tracking events for order %s: %w", orderID, result.Error)
	}

	events := make([]tracking.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}
