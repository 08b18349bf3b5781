// Package errs holds the error vocabulary shared by the domain, the use cases
// and the HTTP adapter.
//
// Every error kind pairs a sentinel with a detail struct:
//
//	ErrValueIsRequired   -> *ValueIsRequiredError   (missing address, order id)
//	ErrValueIsInvalid    -> *ValueIsInvalidError    (bad coordinates, delivery type)
//	ErrValueIsOutOfRange -> *ValueIsOutOfRangeError (latitude, execution order)
//	ErrObjectNotFound    -> *ObjectNotFoundError    (order, milestone)
//
// The structs unwrap to their sentinel, so callers branch with errors.Is and
// read details with errors.As. Constructors come in plain and WithCause forms.
package errs
