// Package errs provides standardized error types for the field routing service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure classes the API distinguishes:
//   - ValueIsRequiredError and ValueIsInvalidError: rejected input (HTTP 400)
//   - ObjectNotFoundError: an unknown work order or technician (HTTP 404)
//   - PersistenceError: a storage failure, transaction rolled back (HTTP 500)
//   - ConsistencyError: related records cannot be kept consistent (HTTP 500)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
package errs
