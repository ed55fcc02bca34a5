package notificationrepo

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.NotificationSink = (*GormNotificationSink)(nil)

// GormNotificationSink provides PostgreSQL-backed persistence for customer
// notifications.
type GormNotificationSink struct {
	db *gorm.DB
}

// NewGormNotificationSink creates a sink bound to the given connection.
func NewGormNotificationSink(db *gorm.DB) *GormNotificationSink {
	return &GormNotificationSink{db: db}
}

// Notify persists a notification for later retrieval by the customer.
func (s *GormNotificationSink) Notify(ctx context.Context, n notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("store notification for user %s: %w", n.UserID(), err)
	}

	return nil
}

// ListByUser retrieves the user's notifications, newest first. A user without
// notifications yields an empty slice.
func (s *GormNotificationSink) ListByUser(ctx context.Context, userID kernel.UUID) ([]notification.Notification, error) {
	var dtos []NotificationDTO
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Order("created_at DESC").
		Find(&dtos)
	if result.Error != nil {
		return nil, fmt.Errorf("list notifications for user %s: %w", userID, result.Error)
	}

	notifications := make([]notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}
