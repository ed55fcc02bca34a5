package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrackingEventsQueryHandler reads an order's timeline from the
// append-only ledger table. Events come back ascending by timestamp, the
// order they were observed in.
type GetTrackingEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingEventsQueryHandler creates a handler for ledger timeline
// reads.
func NewGetTrackingEventsQueryHandler(db *gorm.DB) GetTrackingEventsQueryHandler {
	return GetTrackingEventsQueryHandler{db: db}
}

// Handle executes the timeline read. An order without events yields an empty
// slice, not an error; the ledger cannot distinguish an unknown order from
// one that has not moved yet.
func (h GetTrackingEventsQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingEventsQuery,
) ([]TrackingEventResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]TrackingEventResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			status,
			description,
			location,
			location_type,
			timestamp
		FROM tracking_events
		WHERE order_id = ?
		ORDER BY timestamp
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			orderID   uuid.UUID
			event     TrackingEventResponse
			timestamp time.Time
		)

		err = rows.Scan(
			&id,
			&orderID,
			&event.Status,
			&event.Description,
			&event.Location,
			&event.LocationType,
			&timestamp,
		)
		if err != nil {
			return nil, err
		}

		event.ID = id.String()
		event.OrderID = orderID.String()
		event.Timestamp = timestamp.UTC()
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
