// Package guard holds the constructor guard embedded by commands and queries
// so a zero-value struct can be told apart from one built by its constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner went through a constructor.
// Embed it in a command, call NewConstructorGuard from the constructor and
// Validate from the handler:
//
//	type CancelOrderCommand struct {
//	    orderID uint64
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c CancelOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
