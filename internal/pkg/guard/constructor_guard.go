// Package guard provides the ConstructorGuard pattern used by domain objects
// and commands to ensure they are only created through their designated
// constructor functions. A zero-value struct fails validation, which prevents
// bypassing the invariant checks the constructor performs.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied for an object that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether the embedding object was created through
// its constructor. Embed one as a private field and set it via
// NewConstructorGuard inside the constructor; the zero value reports the
// object as not constructed.
//
// Example:
//
//	type ReceiveStockCommand struct {
//	    itemID kernel.UUID
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewReceiveStockCommand(itemID kernel.UUID) (ReceiveStockCommand, error) {
//	    ...
//	    return ReceiveStockCommand{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ReceiveStockCommand) Validate() error {
//	    return c.guard.Validate(ErrReceiveStockCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed object. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
