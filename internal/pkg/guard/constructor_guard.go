// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities and commands to tell instances built by their constructor apart
// from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as an unexported field and set only by constructors.
//
// Example:
//
//	type Fee struct {
//	    amount float64
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewFee(amount float64) Fee {
//	    return Fee{amount: amount, guard: guard.NewConstructorGuard()}
//	}
//
//	func (f Fee) Validate() error {
//	    return f.guard.Validate(ErrFeeIsNotConstructed)
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
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
