// Package notificationrepo implements the customer notification store using
// GORM and PostgreSQL. Writes come from fulfillment handlers as best-effort
// side effects; reads feed the customer's notification feed, newest first.
package notificationrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO is the database representation of a customer notification.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for GORM.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID().Bytes(),
		UserID:    n.UserID().Bytes(),
		OrderID:   n.OrderID().Bytes(),
		Title:     n.Title(),
		Body:      n.Body(),
		CreatedAt: n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return notification.Notification{}, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return notification.Notification{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return notification.Notification{}, err
	}

	return notification.RestoreNotification(id, userID, orderID, dto.Title,
		dto.Body, dto.CreatedAt.UTC())
}
