package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// EventKind names the business moments the core announces to the outside.
type EventKind string

const (
	EventKindStockReceived     EventKind = "stock.received"
	EventKindOrderItemDecided  EventKind = "order.item_decided"
	EventKindDeliveryCreated   EventKind = "delivery.created"
	EventKindDeliveryDispatch  EventKind = "delivery.dispatched"
	EventKindDeliveryCancelled EventKind = "delivery.cancelled"
	EventKindDeliveryConfirmed EventKind = "delivery.confirmed"
)

// Event is a structured notification about a completed core operation.
// Delivering it (push, email) is entirely the notification collaborator's
// concern; a failed delivery never rolls back the operation that emitted it.
type Event struct {
	Kind EventKind

	PurchaseOrderID *kernel.UUID
	DeliveryID      *kernel.UUID

	// ActorCompanyID is the company that performed the operation.
	// CounterpartCompanyID is the other party of a two-sided operation and
	// stays zero when there is none, as for stock intake.
	ActorCompanyID       kernel.UUID
	CounterpartCompanyID kernel.UUID

	Summary map[string]string
}

// NotificationOutbox stores events durably inside the business transaction
// that produced them, so an event exists exactly when its operation
// committed. A background job drains the stored events to the Notifier.
type NotificationOutbox interface {
	// Enqueue stores an event in the current transaction.
	Enqueue(ctx context.Context, event Event) error
}

// Notifier hands events to the external notification collaborator.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}
