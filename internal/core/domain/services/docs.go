// Package services provides domain services that orchestrate business
// operations across multiple aggregates. It implements workflows that don't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - DeliveryPlanner: plans a delivery's lines from an approved purchase
//     order or from a direct shipment request
//
// Domain services stay pure: they build and validate aggregates but never
// touch persistence. Reserving the planned stock is the application layer's
// job, inside the same unit of work that stores the delivery.
package services
