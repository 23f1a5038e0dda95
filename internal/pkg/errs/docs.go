// Package errs provides standardized error types for the agrotrace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package distinguishes two families of errors:
//
// Value errors, used by value objects and constructors:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ObjectNotFoundError: a referenced entity cannot be found
//
// Workflow errors, the taxonomy of the supply-chain engine:
//   - UnauthorizedError: role or ownership check failed
//   - InvalidTransitionError: a status change violates the transition table
//   - MissingPrerequisiteError: a transition requires an attribute not yet set
//   - ResourceUnavailableError: a driver or vehicle is not available
//   - SchedulingConflictError: a driver or vehicle is already committed
//   - CodeMismatchError: a scanned tracking code does not match the batch
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrSchedulingConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify any wrapped instance
//
// Callers never match on message text; they classify with errors.Is against
// the sentinels. This keeps the HTTP error mapping and the tests in one place.
package errs
