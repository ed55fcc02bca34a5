package commands_test

import (
	"errors"
	"strings"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStartPackingHandler(orders *MockOrderRepository, ledger *MockTrackingLedger,
	sink *MockNotificationSink, publisher *MockOrderEventPublisher) commands.StartPackingCommandHandler {
	return commands.NewStartPackingCommandHandler(orders, services.NewBarcodeService(),
		ledger, sink, publisher, testLogger())
}

func TestStartPackingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t)

	cmd, err := commands.NewStartPackingCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	ledger := new(MockTrackingLedger)
	sink := new(MockNotificationSink)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		orders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orders.On("TransitionStatus", ctx, aggregate, order.Pending).Return(nil).Once(),
		ledger.On("Append", ctx, mock.AnythingOfType("tracking.Event")).Return(nil).Once(),
		sink.On("Notify", ctx, mock.AnythingOfType("notification.Notification")).Return(nil).Once(),
		publisher.On("PublishStatusChanged", ctx, aggregate.ID(), order.Pending, order.Processing,
			mock.AnythingOfType("time.Time")).Return(nil).Once(),
	)

	handler := newStartPackingHandler(orders, ledger, sink, publisher)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Barcode, "PKG-"))
	assert.Equal(t, order.Processing, aggregate.Status())
	assert.Equal(t, result.Barcode, aggregate.Barcode())
	require.Len(t, aggregate.Tracking().Events, 1)
	orders.AssertExpectations(t)
	ledger.AssertExpectations(t)
	sink.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestStartPackingCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	orders := new(MockOrderRepository)

	handler := newStartPackingHandler(orders, new(MockTrackingLedger), new(MockNotificationSink), new(MockOrderEventPublisher))
	_, err := handler.Handle(ctx, commands.StartPackingCommand{})

	require.ErrorIs(t, err, commands.ErrStartPackingCommandIsNotConstructed)
	orders.AssertNotCalled(t, "Get")
}

func TestStartPackingCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewStartPackingCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	orders.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).Once()

	handler := newStartPackingHandler(orders, new(MockTrackingLedger), new(MockNotificationSink), new(MockOrderEventPublisher))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestStartPackingCommandHandler_Handle_AlreadyProcessing(t *testing.T) {
	ctx := t.Context()
	aggregate := processingOrder(t, "PKG-EXISTING")

	cmd, err := commands.NewStartPackingCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	orders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	handler := newStartPackingHandler(orders, new(MockTrackingLedger), new(MockNotificationSink), new(MockOrderEventPublisher))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.Equal(t, "PKG-EXISTING", aggregate.Barcode(), "losing request must not touch the barcode")
	orders.AssertNotCalled(t, "TransitionStatus")
}

func TestStartPackingCommandHandler_Handle_ConcurrentTransitionLost(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t)

	cmd, err := commands.NewStartPackingCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	ledger := new(MockTrackingLedger)

	mock.InOrder(
		orders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orders.On("TransitionStatus", ctx, aggregate, order.Pending).
			Return(errs.NewPreconditionFailedError("startPacking", aggregate.ID().String(), "pending")).
			Once(),
	)

	handler := newStartPackingHandler(orders, ledger, new(MockNotificationSink), new(MockOrderEventPublisher))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	ledger.AssertNotCalled(t, "Append")
}

func TestStartPackingCommandHandler_Handle_SideEffectFailureDowngraded(t *testing.T) {
	ctx := t.Context()
	aggregate := testOrder(t)

	cmd, err := commands.NewStartPackingCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	ledger := new(MockTrackingLedger)
	sink := new(MockNotificationSink)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		orders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orders.On("TransitionStatus", ctx, aggregate, order.Pending).Return(nil).Once(),
		ledger.On("Append", ctx, mock.AnythingOfType("tracking.Event")).
			Return(errors.New("ledger unavailable")).Once(),
		sink.On("Notify", ctx, mock.AnythingOfType("notification.Notification")).
			Return(errors.New("sink unavailable")).Once(),
		publisher.On("PublishStatusChanged", ctx, aggregate.ID(), order.Pending, order.Processing,
			mock.AnythingOfType("time.Time")).Return(errors.New("broker unavailable")).Once(),
	)

	handler := newStartPackingHandler(orders, ledger, sink, publisher)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err, "side effect failures must not fail a committed transition")
	assert.NotEmpty(t, result.Barcode)
	ledger.AssertExpectations(t)
	sink.AssertExpectations(t)
	publisher.AssertExpectations(t)
}
