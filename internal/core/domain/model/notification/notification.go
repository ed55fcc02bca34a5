package notification

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification is used
// without being created through its factory.
var ErrNotificationIsNotConstructed = errs.NewValueIsRequiredError("notification")

// statusMessages maps each lifecycle status onto the customer-facing message
// pushed when an order enters it. Statuses without an entry produce no
// notification.
var statusMessages = map[order.Status]struct {
	title string
	body  string
}{
	order.Processing:     {"Order update", "Your order is being packed."},
	order.Dispatched:     {"Order update", "Your order has been dispatched."},
	order.OutForDelivery: {"Order update", "Your order is out for delivery."},
	order.Delivered:      {"Order delivered", "Your order has been delivered. Enjoy!"},
	order.Cancelled:      {"Order cancelled", "Your order has been cancelled."},
}

// Notification is a customer-facing message produced when an order changes
// status. It is written through the NotificationSink port on a best-effort
// basis; a failed write never rolls the status change back.
type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	orderID   kernel.UUID
	title     string
	body      string
	createdAt time.Time

	isConstructed bool
}

// ForStatusChange builds the notification for an order entering the given
// status. The second return value is false for statuses that do not notify
// the customer (currently only Pending).
func ForStatusChange(orderID kernel.UUID, userID kernel.UUID, status order.Status, at time.Time) (Notification, bool) {
	msg, ok := statusMessages[status]
	if !ok {
		return Notification{}, false
	}

	return Notification{
		id:            kernel.NewUUID(),
		userID:        userID,
		orderID:       orderID,
		title:         msg.title,
		body:          msg.body,
		createdAt:     at,
		isConstructed: true,
	}, true
}

// WithBody returns a copy of the notification carrying the given body
// instead of the per-status table entry. The title is kept; an empty body
// leaves the notification unchanged.
func (n Notification) WithBody(body string) Notification {
	if body == "" {
		return n
	}
	n.body = body
	return n
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(id kernel.UUID, userID kernel.UUID, orderID kernel.UUID,
	title string, body string, createdAt time.Time) (Notification, error) {
	n := Notification{
		id:            id,
		userID:        userID,
		orderID:       orderID,
		title:         title,
		body:          body,
		createdAt:     createdAt,
		isConstructed: true,
	}
	if err := n.id.Validate(); err != nil {
		return Notification{}, err
	}
	return n, nil
}

// Validate ensures the notification was created through a factory.
func (n Notification) Validate() error {
	if !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n Notification) ID() kernel.UUID { return n.id }

// UserID returns the identifier of the notified customer.
func (n Notification) UserID() kernel.UUID { return n.userID }

// OrderID returns the identifier of the order the message is about.
func (n Notification) OrderID() kernel.UUID { return n.orderID }

// Title returns the short message headline.
func (n Notification) Title() string { return n.title }

// Body returns the message text.
func (n Notification) Body() string { return n.body }

// CreatedAt returns the moment the status change was observed.
func (n Notification) CreatedAt() time.Time { return n.createdAt }
