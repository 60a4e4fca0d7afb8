// Package guard provides the constructor guard used by commands and queries to
// reject zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built through its designated constructor.
// Embed it in a struct and set it from the constructor with NewConstructorGuard;
// a zero-value struct will then fail Validate.
//
// Example:
//
//	var ErrLoginCommandIsNotConstructed = errors.New("LoginCommand must be created via NewLoginCommand")
//
//	type LoginCommand struct {
//	    technicianID kernel.ID
//	    guard        guard.ConstructorGuard
//	}
//
//	func (c LoginCommand) Validate() error {
//	    return c.guard.Validate(ErrLoginCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard flagged as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not created through NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
