package notificationrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/notificationrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NotificationSinkIntegrationTestSuite exercises the notification store
// against a real PostgreSQL instance.
type NotificationSinkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	sink      *notificationrepo.GormNotificationSink
}

func (suite *NotificationSinkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&notificationrepo.NotificationDTO{}))
}

func (suite *NotificationSinkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE notifications").Error)
	suite.sink = notificationrepo.NewGormNotificationSink(suite.db)
}

func (suite *NotificationSinkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *NotificationSinkIntegrationTestSuite) TestNotifyAndList_RoundTrip() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	at := time.Now().UTC().Truncate(time.Millisecond)

	n, ok := notification.ForStatusChange(orderID, userID, order.Delivered, at)
	suite.Require().True(ok)

	suite.Require().NoError(suite.sink.Notify(ctx, n))

	notifications, err := suite.sink.ListByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Require().Len(notifications, 1)
	suite.True(notifications[0].ID().IsEqual(n.ID()))
	suite.True(notifications[0].OrderID().IsEqual(orderID))
	suite.Equal(n.Title(), notifications[0].Title())
	suite.Equal(n.Body(), notifications[0].Body())
	suite.True(notifications[0].CreatedAt().Equal(at))
}

func (suite *NotificationSinkIntegrationTestSuite) TestListByUser_NewestFirst() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Millisecond)

	statuses := []order.Status{order.Processing, order.Dispatched, order.OutForDelivery, order.Delivered}
	for i, status := range statuses {
		n, ok := notification.ForStatusChange(orderID, userID, status, base.Add(time.Duration(i)*time.Minute))
		suite.Require().True(ok)
		suite.Require().NoError(suite.sink.Notify(ctx, n))
	}

	notifications, err := suite.sink.ListByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Require().Len(notifications, len(statuses))
	for i := 1; i < len(notifications); i++ {
		suite.False(notifications[i].CreatedAt().After(notifications[i-1].CreatedAt()),
			"feed must come back newest first")
	}
	suite.Equal("Order delivered", notifications[0].Title())
}

func (suite *NotificationSinkIntegrationTestSuite) TestListByUser_ScopedToUser() {
	ctx := context.Background()
	firstUser := kernel.NewUUID()
	secondUser := kernel.NewUUID()
	at := time.Now().UTC()

	first, ok := notification.ForStatusChange(kernel.NewUUID(), firstUser, order.Cancelled, at)
	suite.Require().True(ok)
	second, ok := notification.ForStatusChange(kernel.NewUUID(), secondUser, order.Dispatched, at)
	suite.Require().True(ok)

	suite.Require().NoError(suite.sink.Notify(ctx, first))
	suite.Require().NoError(suite.sink.Notify(ctx, second))

	notifications, err := suite.sink.ListByUser(ctx, firstUser)
	suite.Require().NoError(err)
	suite.Require().Len(notifications, 1)
	suite.True(notifications[0].UserID().IsEqual(firstUser))
}

func (suite *NotificationSinkIntegrationTestSuite) TestListByUser_UnknownUser_ReturnsEmptySlice() {
	ctx := context.Background()

	notifications, err := suite.sink.ListByUser(ctx, kernel.NewUUID())

	suite.Require().NoError(err)
	suite.Empty(notifications)
}

func TestNotificationSinkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationSinkIntegrationTestSuite))
}
