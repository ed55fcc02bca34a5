// Package http adapts the generated API surface onto the application's
// command and query handlers, mapping the error taxonomy to HTTP status
// codes: not found to 404, failed preconditions to 409, failed barcode
// verification to 422.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	startPackingHandler     commands.StartPackingCommandHandler
	completePackingHandler  commands.CompletePackingCommandHandler
	startDeliveryHandler    commands.StartDeliveryCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	assignRiderHandler      commands.AssignRiderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler

	// Query handlers
	getOrderTrackingHandler  queries.GetOrderTrackingQueryHandler
	getTrackingEventsHandler queries.GetTrackingEventsQueryHandler
	getActiveOrdersHandler   queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	startPackingHandler commands.StartPackingCommandHandler,
	completePackingHandler commands.CompletePackingCommandHandler,
	startDeliveryHandler commands.StartDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderTrackingHandler queries.GetOrderTrackingQueryHandler,
	getTrackingEventsHandler queries.GetTrackingEventsQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		startPackingHandler:      startPackingHandler,
		completePackingHandler:   completePackingHandler,
		startDeliveryHandler:     startDeliveryHandler,
		completeDeliveryHandler:  completeDeliveryHandler,
		assignRiderHandler:       assignRiderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getOrderTrackingHandler:  getOrderTrackingHandler,
		getTrackingEventsHandler: getTrackingEventsHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
	}
}

// StartPacking handles POST /api/v1/orders/{orderId}/packing/start.
func (s *Server) StartPacking(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.StartPackingRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}
	packerID, err := kernel.UUIDFromBytes(request.PackerId[:])
	if err != nil {
		return badRequest(ctx, "Invalid packer identifier")
	}

	cmd, err := commands.NewStartPackingCommand(orderID, packerID)
	if err != nil {
		return badRequest(ctx, "Invalid packing data: "+err.Error())
	}

	result, err := s.startPackingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OperationResult{
		Success: true,
		Message: "Packing started",
		Barcode: &result.Barcode,
	})
}

// CompletePacking handles POST /api/v1/orders/{orderId}/packing/complete.
func (s *Server) CompletePacking(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.CompletePackingRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}
	packerID, err := kernel.UUIDFromBytes(request.PackerId[:])
	if err != nil {
		return badRequest(ctx, "Invalid packer identifier")
	}

	cmd, err := commands.NewCompletePackingCommand(orderID, packerID, stringValue(request.Barcode))
	if err != nil {
		return badRequest(ctx, "Invalid packing data: "+err.Error())
	}

	if handleErr := s.completePackingHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.OperationResult{
		Success: true,
		Message: "Order dispatched",
	})
}

// StartDelivery handles POST /api/v1/orders/{orderId}/delivery/start.
func (s *Server) StartDelivery(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.StartDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}
	riderID, err := kernel.UUIDFromBytes(request.RiderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid rider identifier")
	}

	var driver *commands.DriverInfo
	if request.Driver != nil {
		driver = &commands.DriverInfo{
			Name:  request.Driver.Name,
			Phone: stringValue(request.Driver.Phone),
			Photo: stringValue(request.Driver.Photo),
		}
	}

	cmd, err := commands.NewStartDeliveryCommand(orderID, riderID, driver)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if handleErr := s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.OperationResult{
		Success: true,
		Message: "Delivery started",
	})
}

// CompleteDelivery handles POST /api/v1/orders/{orderId}/delivery/complete.
func (s *Server) CompleteDelivery(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.CompleteDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}
	riderID, err := kernel.UUIDFromBytes(request.RiderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid rider identifier")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, riderID,
		stringValue(request.Barcode), stringValue(request.Signature))
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if handleErr := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.OperationResult{
		Success: true,
		Message: "Order delivered",
	})
}

// AssignRider handles POST /api/v1/orders/{orderId}/assign.
func (s *Server) AssignRider(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.AssignRiderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}
	riderID, err := kernel.UUIDFromBytes(request.RiderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid rider identifier")
	}

	cmd, err := commands.NewAssignRiderCommand(orderID, riderID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignRiderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.OperationResult{
		Success: true,
		Message: "Rider assigned",
	})
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel. The body is
// optional; a supplied reason replaces the standard cancellation message in
// the customer notification.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.CancelOrderRequest
	if ctx.Request().ContentLength > 0 {
		if err := ctx.Bind(&request); err != nil {
			return badRequest(ctx, "Invalid request body")
		}
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, stringValue(request.Reason))
	if err != nil {
		return badRequest(ctx, "Invalid order identifier: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.OperationResult{
		Success: true,
		Message: "Order cancelled",
	})
}

// GetOrderTracking handles GET /api/v1/orders/{orderId}/tracking.
func (s *Server) GetOrderTracking(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order identifier: "+err.Error())
	}

	view, err := s.getOrderTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	response := servers.OrderTracking{
		OrderId:  view.OrderID.Bytes(),
		Status:   view.Status,
		EtaHours: view.EtaHours,
		Tracking: trackingDocument(view.Tracking),
	}
	if view.AssignedTo != nil {
		assignedTo := view.AssignedTo.Bytes()
		response.AssignedTo = &assignedTo
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTrackingEvents handles GET /api/v1/orders/{orderId}/events.
func (s *Server) GetTrackingEvents(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order identifier")
	}

	query, err := queries.NewGetTrackingEventsQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order identifier: "+err.Error())
	}

	events, err := s.getTrackingEventsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	response := make([]servers.TrackingEvent, len(events))
	for i, event := range events {
		response[i] = trackingEvent(event)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	response := make([]servers.ActiveOrder, len(orders))
	for i, activeOrder := range orders {
		response[i] = servers.ActiveOrder{
			Id:          activeOrder.ID.Bytes(),
			UserId:      activeOrder.UserID.Bytes(),
			Status:      activeOrder.Status,
			RegionalHub: optional(activeOrder.RegionalHub),
		}
		if activeOrder.AssignedTo != nil {
			assignedTo := activeOrder.AssignedTo.Bytes()
			response[i].AssignedTo = &assignedTo
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func trackingDocument(doc queries.TrackingResponse) servers.TrackingDocument {
	response := servers.TrackingDocument{
		Barcode:                   optional(doc.Barcode),
		PackingStartedAt:          doc.PackingStartedAt,
		PackingCompletedAt:        doc.PackingCompletedAt,
		DeliveryStartedAt:         doc.DeliveryStartedAt,
		DeliveredAt:               doc.DeliveredAt,
		PackerId:                  doc.PackerID,
		PackingVerifiedByBarcode:  &doc.PackingVerifiedByBarcode,
		DeliveryVerifiedByBarcode: &doc.DeliveryVerifiedByBarcode,
		RegionalHub:               optional(doc.RegionalHub),
		Signature:                 optional(doc.Signature),
	}

	if doc.Driver != nil {
		response.Driver = &servers.TrackingDriver{
			Id:    doc.Driver.ID,
			Name:  doc.Driver.Name,
			Phone: optional(doc.Driver.Phone),
			Photo: optional(doc.Driver.Photo),
		}
	}

	if len(doc.Events) > 0 {
		events := make([]servers.TrackingEvent, len(doc.Events))
		for i, event := range doc.Events {
			events[i] = trackingEvent(event)
		}
		response.Events = &events
	}

	return response
}

func trackingEvent(event queries.TrackingEventResponse) servers.TrackingEvent {
	return servers.TrackingEvent{
		Id:           event.ID,
		OrderId:      event.OrderID,
		Status:       event.Status,
		Description:  optional(event.Description),
		Location:     optional(event.Location),
		LocationType: event.LocationType,
		Timestamp:    event.Timestamp,
	}
}

// commandError translates the error taxonomy into the API's status codes.
func commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, errs.ErrPreconditionFailed):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrVerificationFailed):
		return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "Scanned barcode does not match",
		})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
