// Package errs provides standardized error types for the fulfillment service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two groups of error types:
//   - Validation errors: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - Operation errors returned by every state-machine operation: UnauthorizedError,
//     ObjectNotFoundError, InvalidTransitionError, AlreadyAssignedError,
//     AdmissionDeniedError, RefundInvalidError, GatewayFailureError, UnexpectedError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels and extract details
// with errors.As against the struct types.
package errs
