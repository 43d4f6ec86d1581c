// Package delivery contains the Delivery aggregate: a shipment of stock from
// a supplier company to a buyer company, optionally linked to a purchase
// order.
//
// The aggregate owns the delivery status machine (Pending, InTransit,
// Delivered, PartiallyDelivered, Cancelled), the per-line receipt split
// (received, damaged, rejected), and an append-only tracking history. Stock
// unit side effects of status transitions are applied by the application
// layer through the stock ledger; the aggregate only decides legality.
package delivery
