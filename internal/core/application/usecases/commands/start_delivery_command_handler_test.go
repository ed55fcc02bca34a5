package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStartDeliveryHandler(orders *MockOrderRepository, ledger *MockTrackingLedger,
	sink *MockNotificationSink, publisher *MockOrderEventPublisher) commands.StartDeliveryCommandHandler {
	return commands.NewStartDeliveryCommandHandler(orders, ledger, sink, publisher, testLogger())
}

func TestNewStartDeliveryCommand(t *testing.T) {
	t.Run("should create valid command with driver info", func(t *testing.T) {
		driver := &commands.DriverInfo{Name: "Sam Torres", Phone: "+1-555-0117"}

		cmd, err := commands.NewStartDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(), driver)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.NotNil(t, cmd.Driver())
		assert.Equal(t, "Sam Torres", cmd.Driver().Name)
	})

	t.Run("should allow nil driver info", func(t *testing.T) {
		cmd, err := commands.NewStartDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(), nil)

		require.NoError(t, err)
		assert.Nil(t, cmd.Driver())
	})

	t.Run("should reject zero rider id", func(t *testing.T) {
		_, err := commands.NewStartDeliveryCommand(kernel.NewUUID(), kernel.UUID{}, nil)
		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var cmd commands.StartDeliveryCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrStartDeliveryCommandIsNotConstructed)
	})
}

func TestStartDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := dispatchedOrder(t, "PKG-7F3A2C")
	riderID := kernel.NewUUID()

	cmd, err := commands.NewStartDeliveryCommand(aggregate.ID(), riderID,
		&commands.DriverInfo{Name: "Sam Torres", Phone: "+1-555-0117"})
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	ledger := new(MockTrackingLedger)
	sink := new(MockNotificationSink)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		orders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orders.On("TransitionStatus", ctx, aggregate, order.Dispatched).Return(nil).Once(),
		ledger.On("Append", ctx, mock.AnythingOfType("tracking.Event")).Return(nil).Once(),
		sink.On("Notify", ctx, mock.AnythingOfType("notification.Notification")).Return(nil).Once(),
		publisher.On("PublishStatusChanged", ctx, aggregate.ID(), order.Dispatched, order.OutForDelivery,
			mock.AnythingOfType("time.Time")).Return(nil).Once(),
	)

	handler := newStartDeliveryHandler(orders, ledger, sink, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, aggregate.Status())
	require.NotNil(t, aggregate.AssignedTo())
	assert.True(t, aggregate.AssignedTo().IsEqual(riderID))
	require.NotNil(t, aggregate.Tracking().Driver)
	assert.Equal(t, "Sam Torres", aggregate.Tracking().Driver.Name)
	assert.True(t, aggregate.Tracking().Driver.ID.IsEqual(riderID))
	orders.AssertExpectations(t)
}

func TestStartDeliveryCommandHandler_Handle_NotDispatched(t *testing.T) {
	ctx := t.Context()
	aggregate := processingOrder(t, "PKG-7F3A2C")

	cmd, err := commands.NewStartDeliveryCommand(aggregate.ID(), kernel.NewUUID(), nil)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	orders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	handler := newStartDeliveryHandler(orders, new(MockTrackingLedger),
		new(MockNotificationSink), new(MockOrderEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.Equal(t, order.Processing, aggregate.Status())
	assert.Nil(t, aggregate.AssignedTo())
	orders.AssertNotCalled(t, "TransitionStatus")
}

func TestStartDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	orders := new(MockOrderRepository)

	handler := newStartDeliveryHandler(orders, new(MockTrackingLedger),
		new(MockNotificationSink), new(MockOrderEventPublisher))
	err := handler.Handle(ctx, commands.StartDeliveryCommand{})

	require.ErrorIs(t, err, commands.ErrStartDeliveryCommandIsNotConstructed)
	orders.AssertNotCalled(t, "Get")
}
