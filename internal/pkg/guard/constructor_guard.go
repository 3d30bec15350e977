// Package guard lets domain objects tell a constructed value from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects and commands that must be built
// through a constructor. Its zero value fails validation.
//
//	type AddPizzaCommand struct {
//	    recipe string
//	    guard  guard.ConstructorGuard
//	}
//
//	func (c AddPizzaCommand) Validate() error {
//	    return c.guard.Validate(ErrAddPizzaCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the owning value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the owner was not built by its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
