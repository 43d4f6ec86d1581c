// Package http adapts the REST API to the application's commands and
// queries. Request and response shapes live in the generated servers package;
// this package translates them to domain types and maps domain errors to
// HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	receiveStockHandler           commands.ReceiveStockCommandHandler
	setOrderItemStatusHandler     commands.SetOrderItemStatusCommandHandler
	createOrderDeliveryHandler    commands.CreateOrderDeliveryCommandHandler
	createDirectDeliveryHandler   commands.CreateDirectDeliveryCommandHandler
	dispatchDeliveryHandler       commands.DispatchDeliveryCommandHandler
	cancelDeliveryHandler         commands.CancelDeliveryCommandHandler
	confirmDeliveryReceiptHandler commands.ConfirmDeliveryReceiptCommandHandler

	// Query handlers
	getAvailableStockHandler   queries.GetAvailableStockQueryHandler
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	receiveStockHandler commands.ReceiveStockCommandHandler,
	setOrderItemStatusHandler commands.SetOrderItemStatusCommandHandler,
	createOrderDeliveryHandler commands.CreateOrderDeliveryCommandHandler,
	createDirectDeliveryHandler commands.CreateDirectDeliveryCommandHandler,
	dispatchDeliveryHandler commands.DispatchDeliveryCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	confirmDeliveryReceiptHandler commands.ConfirmDeliveryReceiptCommandHandler,
	getAvailableStockHandler queries.GetAvailableStockQueryHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
) *Server {
	return &Server{
		receiveStockHandler:           receiveStockHandler,
		setOrderItemStatusHandler:     setOrderItemStatusHandler,
		createOrderDeliveryHandler:    createOrderDeliveryHandler,
		createDirectDeliveryHandler:   createDirectDeliveryHandler,
		dispatchDeliveryHandler:       dispatchDeliveryHandler,
		cancelDeliveryHandler:         cancelDeliveryHandler,
		confirmDeliveryReceiptHandler: confirmDeliveryReceiptHandler,
		getAvailableStockHandler:      getAvailableStockHandler,
		getActiveDeliveriesHandler:    getActiveDeliveriesHandler,
	}
}

// ReceiveStock handles POST /api/v1/stock/receipts - records incoming stock.
func (s *Server) ReceiveStock(ctx echo.Context) error {
	var body servers.ReceiveStockRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromBytes(body.ProductId[:])
	if err != nil {
		return badRequest(ctx, "Invalid productId")
	}
	companyID, err := kernel.UUIDFromBytes(body.CompanyId[:])
	if err != nil {
		return badRequest(ctx, "Invalid companyId")
	}

	unitCost, err := kernel.MoneyFromString(body.UnitCost.Amount, body.UnitCost.Currency)
	if err != nil {
		return badRequest(ctx, "Invalid unit cost: "+err.Error())
	}

	receiptID := kernel.NewUUID()
	cmd, err := commands.NewReceiveStockCommand(
		receiptID, productID, companyID,
		body.Quantity, unitCost,
		stringValue(body.Batch), body.Expiry,
	)
	if err != nil {
		return badRequest(ctx, "Invalid stock receipt data: "+err.Error())
	}

	if handleErr := s.receiveStockHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.StockReceiptCreated{
		ReceiptId: receiptID.Bytes(),
	})
}

// GetAvailableStock handles GET /api/v1/companies/{companyId}/stock.
func (s *Server) GetAvailableStock(ctx echo.Context, companyId openapi_types.UUID) error {
	companyID, err := kernel.UUIDFromBytes(companyId[:])
	if err != nil {
		return badRequest(ctx, "Invalid companyId")
	}

	query, err := queries.NewGetAvailableStockQuery(companyID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	counts, err := s.getAvailableStockHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve stock availability")
	}

	response := make([]servers.StockAvailability, len(counts))
	for i, count := range counts {
		response[i] = servers.StockAvailability{
			ProductId:      count.ProductID.Bytes(),
			AvailableUnits: count.AvailableUnits,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DecideOrderItem handles POST /api/v1/orders/{orderId}/items/{itemId}/decision.
func (s *Server) DecideOrderItem(ctx echo.Context, orderId openapi_types.UUID, itemId openapi_types.UUID) error {
	var body servers.OrderItemDecision
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid orderId")
	}
	itemID, err := kernel.UUIDFromBytes(itemId[:])
	if err != nil {
		return badRequest(ctx, "Invalid itemId")
	}
	actorID, err := kernel.UUIDFromBytes(body.ActorCompanyId[:])
	if err != nil {
		return badRequest(ctx, "Invalid actorCompanyId")
	}

	decision, err := decisionFromWire(body.Decision)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewSetOrderItemStatusCommand(orderID, itemID, decision, actorID)
	if err != nil {
		return badRequest(ctx, "Invalid decision data: "+err.Error())
	}

	if handleErr := s.setOrderItemStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrderDelivery handles POST /api/v1/orders/{orderId}/delivery.
func (s *Server) CreateOrderDelivery(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.CreateOrderDeliveryRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid orderId")
	}
	actorID, err := kernel.UUIDFromBytes(body.ActorCompanyId[:])
	if err != nil {
		return badRequest(ctx, "Invalid actorCompanyId")
	}

	overrides, err := overridesFromWire(body.Overrides)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCreateOrderDeliveryCommand(orderID, actorID, body.PlannedDate, overrides)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	deliveryID, handleErr := s.createOrderDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.DeliveryCreated{
		DeliveryId: deliveryID.Bytes(),
	})
}

// CreateDirectDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDirectDelivery(ctx echo.Context) error {
	var body servers.CreateDirectDeliveryRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	supplierID, err := kernel.UUIDFromBytes(body.SupplierCompanyId[:])
	if err != nil {
		return badRequest(ctx, "Invalid supplierCompanyId")
	}
	buyerID, err := kernel.UUIDFromBytes(body.BuyerCompanyId[:])
	if err != nil {
		return badRequest(ctx, "Invalid buyerCompanyId")
	}

	lines := make([]services.DirectLine, 0, len(body.Lines))
	for _, line := range body.Lines {
		productID, lineErr := kernel.UUIDFromBytes(line.ProductId[:])
		if lineErr != nil {
			return badRequest(ctx, "Invalid productId")
		}

		unitPrice, lineErr := kernel.MoneyFromString(line.UnitPrice.Amount, line.UnitPrice.Currency)
		if lineErr != nil {
			return badRequest(ctx, "Invalid unit price: "+lineErr.Error())
		}

		lines = append(lines, services.DirectLine{
			ProductID: productID,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
			Batch:     stringValue(line.Batch),
			Expiry:    line.Expiry,
		})
	}

	cmd, err := commands.NewCreateDirectDeliveryCommand(supplierID, buyerID, body.PlannedDate, lines)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	deliveryID, handleErr := s.createDirectDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.DeliveryCreated{
		DeliveryId: deliveryID.Bytes(),
	})
}

// DispatchDelivery handles POST /api/v1/deliveries/{deliveryId}/dispatch.
func (s *Server) DispatchDelivery(ctx echo.Context, deliveryId openapi_types.UUID) error {
	var body servers.DispatchDeliveryRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryID, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return badRequest(ctx, "Invalid deliveryId")
	}
	actorID, err := kernel.UUIDFromBytes(body.ActorCompanyId[:])
	if err != nil {
		return badRequest(ctx, "Invalid actorCompanyId")
	}

	cmd, err := commands.NewDispatchDeliveryCommand(deliveryID, actorID, body.Carrier, stringValue(body.TrackingNumber))
	if err != nil {
		return badRequest(ctx, "Invalid dispatch data: "+err.Error())
	}

	if handleErr := s.dispatchDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDelivery handles POST /api/v1/deliveries/{deliveryId}/cancel.
func (s *Server) CancelDelivery(ctx echo.Context, deliveryId openapi_types.UUID) error {
	var body servers.CancelDeliveryRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryID, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return badRequest(ctx, "Invalid deliveryId")
	}
	actorID, err := kernel.UUIDFromBytes(body.ActorCompanyId[:])
	if err != nil {
		return badRequest(ctx, "Invalid actorCompanyId")
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, actorID)
	if err != nil {
		return badRequest(ctx, "Invalid cancel data: "+err.Error())
	}

	if handleErr := s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDeliveryReceipt handles POST /api/v1/deliveries/{deliveryId}/confirm-receipt.
func (s *Server) ConfirmDeliveryReceipt(ctx echo.Context, deliveryId openapi_types.UUID) error {
	var body servers.ConfirmReceiptRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryID, err := kernel.UUIDFromBytes(deliveryId[:])
	if err != nil {
		return badRequest(ctx, "Invalid deliveryId")
	}
	actorID, err := kernel.UUIDFromBytes(body.ActorCompanyId[:])
	if err != nil {
		return badRequest(ctx, "Invalid actorCompanyId")
	}

	splits := make([]delivery.ReceiptSplit, 0, len(body.Splits))
	for _, split := range body.Splits {
		itemID, splitErr := kernel.UUIDFromBytes(split.ItemId[:])
		if splitErr != nil {
			return badRequest(ctx, "Invalid itemId")
		}

		splits = append(splits, delivery.ReceiptSplit{
			ItemID:   itemID,
			Received: split.Received,
			Damaged:  split.Damaged,
			Rejected: split.Rejected,
		})
	}

	cmd, err := commands.NewConfirmDeliveryReceiptCommand(deliveryID, actorID, splits)
	if err != nil {
		return badRequest(ctx, "Invalid receipt data: "+err.Error())
	}

	if handleErr := s.confirmDeliveryReceiptHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveDeliveries handles GET /api/v1/companies/{companyId}/deliveries/active.
func (s *Server) GetActiveDeliveries(ctx echo.Context, companyId openapi_types.UUID) error {
	companyID, err := kernel.UUIDFromBytes(companyId[:])
	if err != nil {
		return badRequest(ctx, "Invalid companyId")
	}

	query, err := queries.NewGetActiveDeliveriesQuery(companyID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	deliveries, err := s.getActiveDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve deliveries")
	}

	response := make([]servers.ActiveDelivery, len(deliveries))
	for i, d := range deliveries {
		var orderID *openapi_types.UUID
		if d.OrderID != nil {
			raw := d.OrderID.Bytes()
			orderID = &raw
		}

		response[i] = servers.ActiveDelivery{
			Id:          d.ID.Bytes(),
			OrderId:     orderID,
			SupplierId:  d.SupplierID.Bytes(),
			BuyerId:     d.BuyerID.Bytes(),
			Status:      d.Status.String(),
			PlannedDate: d.PlannedDate,
			ItemCount:   d.ItemCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func decisionFromWire(decision servers.OrderItemDecisionDecision) (order.ItemStatus, error) {
	switch decision {
	case servers.Approved:
		return order.ItemStatusApproved, nil
	case servers.Rejected:
		return order.ItemStatusRejected, nil
	default:
		return order.ItemStatusUnknown, errs.NewValueIsInvalidError("decision must be Approved or Rejected")
	}
}

func overridesFromWire(wire *[]servers.LineOverride) ([]services.LineOverride, error) {
	if wire == nil {
		return nil, nil
	}

	overrides := make([]services.LineOverride, 0, len(*wire))
	for _, o := range *wire {
		orderItemID, err := kernel.UUIDFromBytes(o.OrderItemId[:])
		if err != nil {
			return nil, errs.NewValueIsInvalidError("orderItemId")
		}

		var unitPrice *kernel.Money
		if o.UnitPrice != nil {
			price, priceErr := kernel.MoneyFromString(o.UnitPrice.Amount, o.UnitPrice.Currency)
			if priceErr != nil {
				return nil, priceErr
			}
			unitPrice = &price
		}

		overrides = append(overrides, services.LineOverride{
			OrderItemID: orderItemID,
			Batch:       stringValue(o.Batch),
			Expiry:      o.Expiry,
			UnitPrice:   unitPrice,
		})
	}

	return overrides, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// domainError maps a failed command to the HTTP status its error category
// implies.
func domainError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrIllegalStateTransition),
		errors.Is(err, errs.ErrDuplicateOperation):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, services.ErrNoApprovedItems):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}
