// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries so that a zero value can be told apart from one built
// by its constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types that must only be created through
// their New... function. The zero value fails validation.
//
// Example:
//
//	var ErrSkuIsNotConstructed = errors.New("Sku must be created via NewSku")
//
//	type Sku struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSku(code string) (Sku, error) {
//	    if code == "" {
//	        return Sku{}, errs.NewValueIsRequiredError("sku")
//	    }
//	    return Sku{code: code, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s Sku) Validate() error {
//	    return s.guard.Validate(ErrSkuIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
