package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientStock is the sentinel for reservations that exceed the
	// available unit count.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrIllegalStateTransition is the sentinel for status changes not
	// permitted from the current state.
	ErrIllegalStateTransition = errors.New("illegal state transition")

	// ErrForbidden is the sentinel for operations attempted by the wrong
	// company.
	ErrForbidden = errors.New("forbidden")

	// ErrDuplicateOperation is the sentinel for operations that were already
	// performed.
	ErrDuplicateOperation = errors.New("duplicate operation")
)

// InsufficientStockError reports a failed availability check. It carries the
// item together with the available and required counts so callers can report
// the exact shortfall.
type InsufficientStockError struct {
	ItemName  string
	Available int
	Required  int
	Cause     error
}

// NewInsufficientStockError creates an InsufficientStockError for the named
// item with the observed available and required counts.
func NewInsufficientStockError(itemName string, available, required int) *InsufficientStockError {
	return &InsufficientStockError{ItemName: itemName, Available: available, Required: required}
}

// NewInsufficientStockErrorWithCause creates an InsufficientStockError
// wrapping an underlying cause.
func NewInsufficientStockErrorWithCause(itemName string, available, required int, cause error) *InsufficientStockError {
	return &InsufficientStockError{ItemName: itemName, Available: available, Required: required, Cause: cause}
}

func (e *InsufficientStockError) Error() string {
	msg := fmt.Sprintf("%s: item is: %s, available is: %d, required is: %d",
		ErrInsufficientStock, sanitize(e.ItemName), e.Available, e.Required)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause))
	}
	return msg
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// IllegalStateTransitionError reports a status change that is not permitted
// from the current state. From and To carry the string form of the states.
type IllegalStateTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewIllegalStateTransitionError creates an IllegalStateTransitionError for
// the attempted transition.
func NewIllegalStateTransitionError(from, to string) *IllegalStateTransitionError {
	return &IllegalStateTransitionError{From: from, To: to}
}

// NewIllegalStateTransitionErrorWithCause creates an
// IllegalStateTransitionError wrapping an underlying cause.
func NewIllegalStateTransitionErrorWithCause(from, to string, cause error) *IllegalStateTransitionError {
	return &IllegalStateTransitionError{From: from, To: to, Cause: cause}
}

func (e *IllegalStateTransitionError) Error() string {
	msg := fmt.Sprintf("%s: from is: %s, to is: %s", ErrIllegalStateTransition, sanitize(e.From), sanitize(e.To))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause))
	}
	return msg
}

func (e *IllegalStateTransitionError) Unwrap() error {
	return ErrIllegalStateTransition
}

// ForbiddenError reports an operation attempted by a company that may not
// perform it (e.g. a buyer cancelling a delivery, or a supplier confirming
// receipt).
type ForbiddenError struct {
	CompanyID string
	Action    string
	Cause     error
}

// NewForbiddenError creates a ForbiddenError for the acting company and
// attempted action.
func NewForbiddenError(companyID, action string) *ForbiddenError {
	return &ForbiddenError{CompanyID: companyID, Action: action}
}

// NewForbiddenErrorWithCause creates a ForbiddenError wrapping an underlying
// cause.
func NewForbiddenErrorWithCause(companyID, action string, cause error) *ForbiddenError {
	return &ForbiddenError{CompanyID: companyID, Action: action, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	msg := fmt.Sprintf("%s: company is: %s, action is: %s", ErrForbidden, sanitize(e.CompanyID), sanitize(e.Action))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause))
	}
	return msg
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// DuplicateOperationError reports an operation that was already performed,
// such as an explicit delivery creation for an order that already has one.
type DuplicateOperationError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewDuplicateOperationError creates a DuplicateOperationError for the named
// parameter and identifier.
func NewDuplicateOperationError(paramName string, id any) *DuplicateOperationError {
	return &DuplicateOperationError{ParamName: paramName, ID: id}
}

// NewDuplicateOperationErrorWithCause creates a DuplicateOperationError
// wrapping an underlying cause.
func NewDuplicateOperationErrorWithCause(paramName string, id any, cause error) *DuplicateOperationError {
	return &DuplicateOperationError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *DuplicateOperationError) Error() string {
	msg := fmt.Sprintf("%s: param is: %s, ID is: %s", ErrDuplicateOperation, e.ParamName, sanitize(e.ID))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause))
	}
	return msg
}

func (e *DuplicateOperationError) Unwrap() error {
	return ErrDuplicateOperation
}
