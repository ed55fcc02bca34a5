// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order row carries two jsonb documents: the item
// lines, fixed at checkout, and the tracking document, rewritten on every
// status transition together with the status column itself.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Status and assignment are plain columns so they stay queryable
// and conditionally updatable; everything observational lives in the
// tracking document.
type OrderDTO struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID   `gorm:"type:uuid;index"`
	Address    AddressDTO  `gorm:"embedded;embeddedPrefix:address_"`
	Items      ItemsDoc    `gorm:"type:jsonb"`
	Status     int         `gorm:"index"`
	AssignedTo *uuid.UUID  `gorm:"type:uuid;index"`
	Tracking   TrackingDoc `gorm:"type:jsonb"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address within the order table.
type AddressDTO struct {
	City   string
	Street string
	Zip    string
}

// ItemDoc is one order line inside the items document.
type ItemDoc struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// ItemsDoc persists the order lines as a jsonb array.
type ItemsDoc []ItemDoc

// Value implements driver.Valuer, serializing the lines to jsonb.
func (d ItemsDoc) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner, deserializing the jsonb column.
func (d *ItemsDoc) Scan(value any) error {
	return scanJSON(value, d)
}

// DriverDoc is the courier block inside the tracking document.
type DriverDoc struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Photo string `json:"photo,omitempty"`
}

// EventDoc is one timeline observation inside the tracking document. The
// same shape is written to the durable ledger table.
type EventDoc struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"orderId"`
	Status       string    `json:"status"`
	Description  string    `json:"description,omitempty"`
	Location     string    `json:"location,omitempty"`
	LocationType string    `json:"locationType"`
	Timestamp    time.Time `json:"timestamp"`
}

// TrackingDoc persists the tracking document as a jsonb column. The json
// keys are shared with the read-side queries, which parse the same document.
type TrackingDoc struct {
	Barcode                   string     `json:"barcode,omitempty"`
	PackingStartedAt          *time.Time `json:"packingStartedAt,omitempty"`
	PackingCompletedAt        *time.Time `json:"packingCompletedAt,omitempty"`
	DeliveryStartedAt         *time.Time `json:"deliveryStartedAt,omitempty"`
	DeliveredAt               *time.Time `json:"deliveredAt,omitempty"`
	PackerID                  *string    `json:"packerId,omitempty"`
	PackingVerifiedByBarcode  bool       `json:"packingVerifiedByBarcode"`
	DeliveryVerifiedByBarcode bool       `json:"deliveryVerifiedByBarcode"`
	RegionalHub               string     `json:"regionalHub,omitempty"`
	Driver                    *DriverDoc `json:"driver,omitempty"`
	Signature                 string     `json:"signature,omitempty"`
	Events                    []EventDoc `json:"events,omitempty"`
}

// Value implements driver.Valuer, serializing the document to jsonb.
func (d TrackingDoc) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner, deserializing the jsonb column.
func (d *TrackingDoc) Scan(value any) error {
	return scanJSON(value, d)
}

func scanJSON(value any, target any) error {
	switch raw := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(raw, target)
	case string:
		return json.Unmarshal([]byte(raw), target)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var assignedTo *uuid.UUID
	if id := aggregate.AssignedTo(); id != nil {
		raw := id.Bytes()
		assignedTo = &raw
	}

	items := make(ItemsDoc, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDoc{
			ProductID: item.ProductID().String(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
			Image:     item.Image(),
		})
	}

	return OrderDTO{
		ID:     aggregate.ID().Bytes(),
		UserID: aggregate.UserID().Bytes(),
		Address: AddressDTO{
			City:   aggregate.Address().City(),
			Street: aggregate.Address().Street(),
			Zip:    aggregate.Address().Zip(),
		},
		Items:      items,
		Status:     int(aggregate.Status()),
		AssignedTo: assignedTo,
		Tracking:   trackingFromDomain(aggregate.Tracking()),
	}
}

func trackingFromDomain(doc order.Tracking) TrackingDoc {
	dto := TrackingDoc{
		Barcode:                   doc.Barcode,
		PackingStartedAt:          doc.PackingStartedAt,
		PackingCompletedAt:        doc.PackingCompletedAt,
		DeliveryStartedAt:         doc.DeliveryStartedAt,
		DeliveredAt:               doc.DeliveredAt,
		PackingVerifiedByBarcode:  doc.PackingVerifiedByBarcode,
		DeliveryVerifiedByBarcode: doc.DeliveryVerifiedByBarcode,
		RegionalHub:               doc.RegionalHub,
		Signature:                 doc.Signature,
	}

	if doc.PackerID != nil {
		packerID := doc.PackerID.String()
		dto.PackerID = &packerID
	}
	if doc.Driver != nil {
		dto.Driver = &DriverDoc{
			ID:    doc.Driver.ID.String(),
			Name:  doc.Driver.Name,
			Phone: doc.Driver.Phone,
			Photo: doc.Driver.Photo,
		}
	}

	for _, event := range doc.Events {
		dto.Events = append(dto.Events, eventFromDomain(event))
	}

	return dto
}

func eventFromDomain(event tracking.Event) EventDoc {
	return EventDoc{
		ID:           event.ID().String(),
		OrderID:      event.OrderID().String(),
		Status:       event.Status(),
		Description:  event.Description(),
		Location:     event.Location(),
		LocationType: event.LocationType().String(),
		Timestamp:    event.Timestamp(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	address, err := kernel.NewAddress(dto.Address.City, dto.Address.Street, dto.Address.Zip)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, line := range dto.Items {
		productID, itemErr := kernel.UUIDFromString(line.ProductID)
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.NewItem(productID, line.Name, line.Price, line.Quantity, line.Image)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var assignedTo *kernel.UUID
	if dto.AssignedTo != nil {
		riderID, riderErr := kernel.UUIDFromBytes((*dto.AssignedTo)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		assignedTo = &riderID
	}

	doc, err := trackingToDomain(dto.Tracking)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, userID, address, items, order.Status(dto.Status), assignedTo, doc)
}

func trackingToDomain(dto TrackingDoc) (order.Tracking, error) {
	doc := order.Tracking{
		Barcode:                   dto.Barcode,
		PackingStartedAt:          dto.PackingStartedAt,
		PackingCompletedAt:        dto.PackingCompletedAt,
		DeliveryStartedAt:         dto.DeliveryStartedAt,
		DeliveredAt:               dto.DeliveredAt,
		PackingVerifiedByBarcode:  dto.PackingVerifiedByBarcode,
		DeliveryVerifiedByBarcode: dto.DeliveryVerifiedByBarcode,
		RegionalHub:               dto.RegionalHub,
		Signature:                 dto.Signature,
	}

	if dto.PackerID != nil {
		packerID, err := kernel.UUIDFromString(*dto.PackerID)
		if err != nil {
			return order.Tracking{}, err
		}
		doc.PackerID = &packerID
	}
	if dto.Driver != nil {
		driverID, err := kernel.UUIDFromString(dto.Driver.ID)
		if err != nil {
			return order.Tracking{}, err
		}
		doc.Driver = &order.Driver{
			ID:    driverID,
			Name:  dto.Driver.Name,
			Phone: dto.Driver.Phone,
			Photo: dto.Driver.Photo,
		}
	}

	for _, raw := range dto.Events {
		event, err := eventToDomain(raw)
		if err != nil {
			return order.Tracking{}, err
		}
		doc.Events = append(doc.Events, event)
	}

	return doc, nil
}

func eventToDomain(dto EventDoc) (tracking.Event, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return tracking.Event{}, err
	}
	orderID, err := kernel.UUIDFromString(dto.OrderID)
	if err != nil {
		return tracking.Event{}, err
	}
	locationType, err := tracking.LocationTypeFromString(dto.LocationType)
	if err != nil {
		return tracking.Event{}, err
	}

	return tracking.RestoreEvent(id, orderID, dto.Status, dto.Description,
		dto.Location, locationType, dto.Timestamp)
}
