// Package notification provides the customer-facing message produced when an
// order changes status, and the fixed per-status message table. Notifications
// are persisted best-effort through the NotificationSink port.
package notification
