// Package errs provides the error taxonomy of the order service.
//
// Every error that leaves a use case belongs to one of three classes:
//   - InvalidArgument: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - NotFound: ObjectNotFoundError
//   - InternalFailure: OperationFailedError
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// Callers classify errors with IsInvalidArgument, IsNotFound and
// IsInternalFailure, which see through any amount of wrapping.
package errs
