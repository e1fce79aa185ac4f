// Package errs holds the typed errors shared by the domain and application
// layers. Every type pairs with a sentinel so callers can branch with
// errors.Is while still getting the offending parameter in the message:
//
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value breaks a business rule
//   - ValueIsOutOfRangeError: a value falls outside [Min..Max]
//   - ObjectNotFoundError: a lookup matched nothing
//   - VersionIsInvalidError: an optimistic-lock update lost the race
//
// The HTTP adapter maps ErrObjectNotFound to 404 and the validation
// sentinels to a flash message or a 400 response.
package errs
