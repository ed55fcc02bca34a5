package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/postgres/ledgerrepo"
	"fulfillment/internal/adapters/out/postgres/notificationrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, domain services and use case handlers.
// Handlers are created per request for clarity; all of them share the same
// connection pool and the same event publisher.
type CompositionRoot struct {
	gormDB    *gorm.DB
	publisher ports.OrderEventPublisher
	logger    *slog.Logger

	barcodes services.BarcodeService
	hubs     services.HubResolver
	eta      services.EtaEstimator
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.OrderEventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:    gormDB,
		publisher: publisher,
		logger:    logger,
		barcodes:  services.NewBarcodeService(),
		hubs:      services.NewHubResolver(),
		eta:       services.NewEtaEstimator(),
	}
}

func (c *CompositionRoot) CreateOrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB)
}

func (c *CompositionRoot) CreateProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(c.gormDB)
}

func (c *CompositionRoot) CreateTrackingLedger() ports.TrackingLedger {
	return ledgerrepo.NewGormTrackingLedger(c.gormDB)
}

func (c *CompositionRoot) CreateNotificationSink() ports.NotificationSink {
	return notificationrepo.NewGormNotificationSink(c.gormDB)
}

func (c *CompositionRoot) CreateStartPackingCommandHandler() commands.StartPackingCommandHandler {
	return commands.NewStartPackingCommandHandler(
		c.CreateOrderRepository(),
		c.barcodes,
		c.CreateTrackingLedger(),
		c.CreateNotificationSink(),
		c.publisher,
		c.logger,
	)
}

func (c *CompositionRoot) CreateCompletePackingCommandHandler() commands.CompletePackingCommandHandler {
	return commands.NewCompletePackingCommandHandler(
		c.CreateOrderRepository(),
		c.CreateProductRepository(),
		c.barcodes,
		c.hubs,
		c.CreateTrackingLedger(),
		c.CreateNotificationSink(),
		c.publisher,
		c.logger,
	)
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	return commands.NewStartDeliveryCommandHandler(
		c.CreateOrderRepository(),
		c.CreateTrackingLedger(),
		c.CreateNotificationSink(),
		c.publisher,
		c.logger,
	)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(
		c.CreateOrderRepository(),
		c.barcodes,
		c.CreateTrackingLedger(),
		c.CreateNotificationSink(),
		c.publisher,
		c.logger,
	)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	return commands.NewAssignRiderCommandHandler(c.CreateOrderRepository())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(
		c.CreateOrderRepository(),
		c.CreateTrackingLedger(),
		c.CreateNotificationSink(),
		c.publisher,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrderTrackingQueryHandler() queries.GetOrderTrackingQueryHandler {
	return queries.NewGetOrderTrackingQueryHandler(c.gormDB, c.eta)
}

func (c *CompositionRoot) CreateGetTrackingEventsQueryHandler() queries.GetTrackingEventsQueryHandler {
	return queries.NewGetTrackingEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateOrderRepository(), c.CreateTrackingLedger(), c.logger)
}
