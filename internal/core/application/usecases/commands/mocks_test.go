package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) TransitionStatus(ctx context.Context, aggregate *order.Order, from order.Status) error {
	args := m.Called(ctx, aggregate, from)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateAssignedRider(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) DeductStock(ctx context.Context, productID kernel.UUID, quantity int) (bool, error) {
	args := m.Called(ctx, productID, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) RestoreStock(ctx context.Context, productID kernel.UUID, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

func (m *MockProductRepository) GetStock(ctx context.Context, productID kernel.UUID) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}

type MockTrackingLedger struct{ mock.Mock }

func (m *MockTrackingLedger) Append(ctx context.Context, event tracking.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTrackingLedger) AppendBatch(ctx context.Context, events []tracking.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockTrackingLedger) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]tracking.Event, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tracking.Event), args.Error(1)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) Notify(ctx context.Context, n notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationSink) ListByUser(ctx context.Context, userID kernel.UUID) ([]notification.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]notification.Notification), args.Error(1)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishStatusChanged(ctx context.Context, orderID kernel.UUID,
	from order.Status, to order.Status, occurredAt time.Time) error {
	args := m.Called(ctx, orderID, from, to, occurredAt)
	return args.Error(0)
}

func (m *MockOrderEventPublisher) Close() {
	m.Called()
}

// testLogger discards output; handler tests assert behavior, not log lines.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("Westbrook", "12 North Ridge Road", "94107")
	require.NoError(t, err)
	return addr
}

func testOrder(t *testing.T, items ...order.Item) *order.Order {
	t.Helper()
	if len(items) == 0 {
		item, err := order.NewItem(kernel.NewUUID(), "Organic Bananas", 2.49, 2, "")
		require.NoError(t, err)
		items = []order.Item{item}
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testAddress(t), items)
	require.NoError(t, err)
	return o
}

func processingOrder(t *testing.T, barcode string, items ...order.Item) *order.Order {
	t.Helper()
	o := testOrder(t, items...)
	require.NoError(t, o.StartPacking(kernel.NewUUID(), barcode, time.Now().UTC()))
	return o
}

func dispatchedOrder(t *testing.T, barcode string) *order.Order {
	t.Helper()
	o := processingOrder(t, barcode)
	require.NoError(t, o.CompletePacking("Central Fulfillment Center", time.Now().UTC(), true))
	return o
}

func outForDeliveryOrder(t *testing.T, barcode string) *order.Order {
	t.Helper()
	o := dispatchedOrder(t, barcode)
	require.NoError(t, o.StartDelivery(kernel.NewUUID(), nil, time.Now().UTC()))
	return o
}
