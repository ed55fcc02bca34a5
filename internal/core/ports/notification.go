package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
)

// NotificationSink defines the store of customer-facing messages. Writes are
// best-effort: handlers log a failed write and carry on, they never roll a
// status change back over it.
type NotificationSink interface {
	// Notify persists a notification for later retrieval by the customer.
	Notify(ctx context.Context, n notification.Notification) error

	// ListByUser retrieves the user's notifications, newest first.
	ListByUser(ctx context.Context, userID kernel.UUID) ([]notification.Notification, error)
}
