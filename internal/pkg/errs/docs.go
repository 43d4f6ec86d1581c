// Package errs provides standardized error types for the fulfillment core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the generic validation errors every layer needs:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: an object cannot be found
//
// and the domain errors of the fulfillment pipeline:
//   - InsufficientStockError: a reservation exceeds available stock
//   - IllegalStateTransitionError: a status change not permitted from the current state
//   - ForbiddenError: the acting company may not perform the operation
//   - DuplicateOperationError: the operation was already performed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInsufficientStock)
//   - A struct type with fields carrying the error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel so errors.Is can classify
//
// Callers distinguish terminal conditions (Forbidden, IllegalStateTransition)
// from retryable ones (transient lock contention surfaced as plain database
// errors) by matching against the sentinels.
package errs
