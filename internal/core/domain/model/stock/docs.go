// Package stock implements the stock ledger: individually identifiable
// inventory units and the receipts that mint them.
//
// A Receipt records quantity units of one catalog item arriving at one
// company, with cost, batch, and expiry. Minting a receipt creates that many
// Unit entities, each starting Available. Units move through
// Available -> Reserved -> InTransit -> Delivered under delivery progress,
// or back to Available when a delivery is cancelled. A unit in Reserved or
// InTransit is linked to exactly one delivery item; in any other status it
// carries no link.
package stock
