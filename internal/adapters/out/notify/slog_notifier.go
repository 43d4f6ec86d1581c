// Package notify contains notifier implementations that deliver published
// events to the outside world.
package notify

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// SlogNotifier publishes events to the structured log. It stands in for an
// external notification channel (push, email) while keeping the outbox
// contract honest end to end.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier that writes events to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger.With("component", "notifier")}
}

// Notify logs the event at info level.
func (n *SlogNotifier) Notify(ctx context.Context, event ports.Event) error {
	attrs := []any{
		"kind", string(event.Kind),
		"actorCompanyId", event.ActorCompanyID.String(),
	}
	if event.CounterpartCompanyID.Validate() == nil {
		attrs = append(attrs, "counterpartCompanyId", event.CounterpartCompanyID.String())
	}
	if event.PurchaseOrderID != nil {
		attrs = append(attrs, "purchaseOrderId", event.PurchaseOrderID.String())
	}
	if event.DeliveryID != nil {
		attrs = append(attrs, "deliveryId", event.DeliveryID.String())
	}
	for key, value := range event.Summary {
		attrs = append(attrs, key, value)
	}

	n.logger.InfoContext(ctx, "Notification published", attrs...)
	return nil
}
