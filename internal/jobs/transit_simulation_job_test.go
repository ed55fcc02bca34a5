package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/tracking"
	"fulfillment/internal/jobs"

	"github.com/stretchr/testify/assert"
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

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dispatchedOrder(t *testing.T, hub string) *order.Order {
	t.Helper()
	address, err := kernel.NewAddress("Westbrook", "12 North Ridge Road", "94107")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Organic Bananas", 2.49, 2, "")
	require.NoError(t, err)
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), address, []order.Item{item})
	require.NoError(t, err)
	require.NoError(t, aggregate.StartPacking(kernel.NewUUID(), "PKG-7F3A2C", time.Now().UTC()))
	require.NoError(t, aggregate.CompletePacking(hub, time.Now().UTC(), true))
	return aggregate
}

func TestTransitSimulationJob_Run_AppendsJourneyOnce(t *testing.T) {
	orders := new(MockOrderRepository)
	ledger := new(MockTrackingLedger)
	aggregate := dispatchedOrder(t, "Westend Regional Hub")

	orders.On("GetAllInStatus", mock.Anything, order.Dispatched).
		Return([]*order.Order{aggregate}, nil)
	ledger.On("ListByOrder", mock.Anything, aggregate.ID()).
		Return([]tracking.Event{}, nil)
	ledger.On("AppendBatch", mock.Anything, mock.MatchedBy(func(events []tracking.Event) bool {
		if len(events) != 3 {
			return false
		}
		transit := 0
		for _, event := range events {
			if !event.OrderID().IsEqual(aggregate.ID()) || event.Status() != "dispatched" {
				return false
			}
			if event.LocationType() == tracking.LocationTypeTransit {
				transit++
			}
		}
		return transit == 2 && events[1].Location() == "Westend Regional Hub"
	})).Return(nil)

	job := jobs.NewTransitSimulationJob(orders, ledger, testLogger())
	require.NoError(t, job.Run(context.Background()))

	ledger.AssertExpectations(t)
}

func TestTransitSimulationJob_Run_SkipsAlreadySimulatedOrder(t *testing.T) {
	orders := new(MockOrderRepository)
	ledger := new(MockTrackingLedger)
	aggregate := dispatchedOrder(t, "Northside Regional Hub")

	existing, err := tracking.NewEvent(aggregate.ID(), "dispatched", "Arrived at regional hub",
		"Northside Regional Hub", tracking.LocationTypeTransit, time.Now().UTC())
	require.NoError(t, err)

	orders.On("GetAllInStatus", mock.Anything, order.Dispatched).
		Return([]*order.Order{aggregate}, nil)
	ledger.On("ListByOrder", mock.Anything, aggregate.ID()).
		Return([]tracking.Event{existing}, nil)

	job := jobs.NewTransitSimulationJob(orders, ledger, testLogger())
	require.NoError(t, job.Run(context.Background()))

	ledger.AssertNotCalled(t, "AppendBatch", mock.Anything, mock.Anything)
}

func TestTransitSimulationJob_Run_NoDispatchedOrders(t *testing.T) {
	orders := new(MockOrderRepository)
	ledger := new(MockTrackingLedger)

	orders.On("GetAllInStatus", mock.Anything, order.Dispatched).
		Return([]*order.Order{}, nil)

	job := jobs.NewTransitSimulationJob(orders, ledger, testLogger())
	require.NoError(t, job.Run(context.Background()))

	ledger.AssertNotCalled(t, "ListByOrder", mock.Anything, mock.Anything)
}

func TestTransitSimulationJob_Run_LedgerFailureDoesNotStopPass(t *testing.T) {
	orders := new(MockOrderRepository)
	ledger := new(MockTrackingLedger)
	broken := dispatchedOrder(t, "Westend Regional Hub")
	healthy := dispatchedOrder(t, "Eastgate Regional Hub")

	orders.On("GetAllInStatus", mock.Anything, order.Dispatched).
		Return([]*order.Order{broken, healthy}, nil)
	ledger.On("ListByOrder", mock.Anything, broken.ID()).
		Return(nil, errors.New("connection reset"))
	ledger.On("ListByOrder", mock.Anything, healthy.ID()).
		Return([]tracking.Event{}, nil)
	ledger.On("AppendBatch", mock.Anything, mock.Anything).Return(nil)

	job := jobs.NewTransitSimulationJob(orders, ledger, testLogger())
	require.NoError(t, job.Run(context.Background()))

	ledger.AssertNumberOfCalls(t, "AppendBatch", 1)
}

func TestTransitSimulationJob_Run_RepositoryFailureFailsPass(t *testing.T) {
	orders := new(MockOrderRepository)
	ledger := new(MockTrackingLedger)

	orders.On("GetAllInStatus", mock.Anything, order.Dispatched).
		Return(nil, errors.New("connection refused"))

	job := jobs.NewTransitSimulationJob(orders, ledger, testLogger())
	err := job.Run(context.Background())

	assert.Error(t, err)
}
