// Package guard provides the constructor guard pattern used by commands and
// queries to reject zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for a zero-value object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable: the internal flag is only set by NewConstructorGuard,
// so any struct initialized directly fails Validate.
//
// Example:
//
//	type StartPackingCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewStartPackingCommand(orderID kernel.UUID) (StartPackingCommand, error) {
//	    // validation...
//	    return StartPackingCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c StartPackingCommand) Validate() error {
//	    return c.guard.Validate(ErrStartPackingCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
// For zero-value objects it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
