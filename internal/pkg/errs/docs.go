// Package errs provides standardized error types for the fulfillment service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - PreconditionFailedError: For when a conditional status transition matched zero rows
//   - VerificationFailedError: For when a scanned handoff barcode does not match
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// PreconditionFailedError and VerificationFailedError are the only two failures a
// fulfillment operation surfaces to its caller once input validation has passed;
// everything that goes wrong after the primary status write is downgraded to a
// logged warning (see the commands package).
package errs
