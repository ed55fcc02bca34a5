package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler reads one order's tracking view straight from
// the database, bypassing the aggregate. The delivery estimate is recomputed
// from the status and the latest tracking observation on every read, never
// stored.
type GetOrderTrackingQueryHandler struct {
	db  *gorm.DB
	eta services.EtaEstimator
}

// NewGetOrderTrackingQueryHandler creates a handler for tracking view reads.
func NewGetOrderTrackingQueryHandler(db *gorm.DB, eta services.EtaEstimator) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db, eta: eta}
}

// Handle executes the tracking view read.
// Returns *errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (GetOrderTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			assigned_to,
			tracking
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id          uuid.UUID
		status      int
		assignedTo  sql.Null[uuid.UUID]
		trackingRaw []byte
	)
	if err := row.Scan(&id, &status, &assignedTo, &trackingRaw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderTrackingQueryResponse{},
				errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return GetOrderTrackingQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	resp := GetOrderTrackingQueryResponse{
		OrderID: orderID,
		Status:  order.Status(status).String(),
	}

	if assignedTo.Valid {
		riderID, riderErr := kernel.UUIDFromBytes(assignedTo.V[:])
		if riderErr != nil {
			return GetOrderTrackingQueryResponse{}, riderErr
		}
		resp.AssignedTo = &riderID
	}

	if len(trackingRaw) > 0 {
		if err = json.Unmarshal(trackingRaw, &resp.Tracking); err != nil {
			return GetOrderTrackingQueryResponse{}, err
		}
	}

	resp.EtaHours = h.eta.Estimate(order.Status(status), latestLocationType(resp.Tracking)).Hours()

	return resp, nil
}

// latestLocationType extracts the location type of the most recent tracking
// observation, unknown when the timeline is still empty.
func latestLocationType(doc TrackingResponse) tracking.LocationType {
	if len(doc.Events) == 0 {
		return tracking.LocationTypeUnknown
	}

	last := doc.Events[len(doc.Events)-1]
	locationType, err := tracking.LocationTypeFromString(last.LocationType)
	if err != nil {
		return tracking.LocationTypeUnknown
	}
	return locationType
}
