package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
	"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
)

// GetOrderTrackingQuery retrieves the live tracking view of one order: its
// status, the tracking document and a delivery estimate recomputed on every
// read.
//
// Example:
//
//	query, err := NewGetOrderTrackingQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Order %s is %s, ETA %.0fh\n", view.OrderID, view.Status, view.EtaHours)
type GetOrderTrackingQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTrackingQuery creates a query for one order's tracking view.
func NewGetOrderTrackingQuery(orderID kernel.UUID) (GetOrderTrackingQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTrackingQuery{}, err
	}

	return GetOrderTrackingQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

// OrderID returns the identifier of the tracked order.
func (q GetOrderTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

// DriverResponse carries the courier details shown to the customer.
type DriverResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Photo string `json:"photo,omitempty"`
}

// TrackingEventResponse is one observation on the order's timeline.
type TrackingEventResponse struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"orderId"`
	Status       string    `json:"status"`
	Description  string    `json:"description,omitempty"`
	Location     string    `json:"location,omitempty"`
	LocationType string    `json:"locationType"`
	Timestamp    time.Time `json:"timestamp"`
}

// TrackingResponse mirrors the persisted tracking document.
type TrackingResponse struct {
	Barcode                   string                  `json:"barcode,omitempty"`
	PackingStartedAt          *time.Time              `json:"packingStartedAt,omitempty"`
	PackingCompletedAt        *time.Time              `json:"packingCompletedAt,omitempty"`
	DeliveryStartedAt         *time.Time              `json:"deliveryStartedAt,omitempty"`
	DeliveredAt               *time.Time              `json:"deliveredAt,omitempty"`
	PackerID                  *string                 `json:"packerId,omitempty"`
	PackingVerifiedByBarcode  bool                    `json:"packingVerifiedByBarcode"`
	DeliveryVerifiedByBarcode bool                    `json:"deliveryVerifiedByBarcode"`
	RegionalHub               string                  `json:"regionalHub,omitempty"`
	Driver                    *DriverResponse         `json:"driver,omitempty"`
	Signature                 string                  `json:"signature,omitempty"`
	Events                    []TrackingEventResponse `json:"events,omitempty"`
}

// GetOrderTrackingQueryResponse is the tracking view of one order.
type GetOrderTrackingQueryResponse struct {
	OrderID    kernel.UUID
	Status     string
	AssignedTo *kernel.UUID
	Tracking   TrackingResponse
	EtaHours   float64
}
