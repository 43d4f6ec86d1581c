// Package order implements the purchase order aggregate and its per-line
// approval workflow.
//
// A buyer places an Order with a supplier; the buyer then approves or
// rejects each line. The order's overall status is never stored: it is a
// pure derivation over the current item statuses (Rejected when every line
// is rejected, AllApproved when every line is approved, SomeApproved when at
// least one but not all are approved, NotYet otherwise). Recomputing on read
// keeps the aggregate immune to drift between concurrent writers.
package order
