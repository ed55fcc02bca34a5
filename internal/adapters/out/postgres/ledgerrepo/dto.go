// Package ledgerrepo implements the append-only tracking ledger using GORM
// and PostgreSQL. The table only ever grows; reads return an order's timeline
// ascending by timestamp.
package ledgerrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// EventDTO is the database representation of a single tracking event row.
type EventDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Status       string    `gorm:"type:varchar(50);not null"`
	Description  string    `gorm:"type:text;not null"`
	Location     string    `gorm:"type:varchar(255);not null"`
	LocationType string    `gorm:"type:varchar(50);not null"`
	Timestamp    time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for GORM.
func (EventDTO) TableName() string {
	return "tracking_events"
}

func fromDomain(event tracking.Event) EventDTO {
	return EventDTO{
		ID:           event.ID().Bytes(),
		OrderID:      event.OrderID().Bytes(),
		Status:       event.Status(),
		Description:  event.Description(),
		Location:     event.Location(),
		LocationType: event.LocationType().String(),
		Timestamp:    event.Timestamp(),
	}
}

func toDomain(dto EventDTO) (tracking.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return tracking.Event{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return tracking.Event{}, err
	}
	locationType, err := tracking.LocationTypeFromString(dto.LocationType)
	if err != nil {
		return tracking.Event{}, err
	}

	return tracking.RestoreEvent(id, orderID, dto.Status, dto.Description,
		dto.Location, locationType, dto.Timestamp.UTC())
}
