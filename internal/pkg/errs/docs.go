// Package errs provides the standardized error types used across the pizzaria
// backend. Each error type follows the same pattern: a sentinel error variable
// (e.g. ErrObjectNotFound), a struct carrying the error details, constructor
// functions with and without an underlying cause, an Error() method for
// formatting, and an Unwrap() method so errors.Is can classify any error
// against its sentinel.
//
// The HTTP layer relies on this classification to map failures onto response
// codes: required/invalid values become 400, not-found lookups become 404.
// Domain-specific failures (invalid status transitions, paused ordering,
// quoting failures) live next to the code that raises them and follow the
// same sentinel-plus-struct convention.
package errs
