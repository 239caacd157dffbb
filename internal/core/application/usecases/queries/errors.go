package queries

import (
	"errors"

	"orderservice/internal/pkg/errs"
)

// readFailed wraps a store error as an internal failure unless it already
// belongs to the error taxonomy.
func readFailed(operation string, err error) error {
	var failed *errs.OperationFailedError
	if errors.As(err, &failed) || errs.IsNotFound(err) || errs.IsInvalidArgument(err) {
		return err
	}
	return errs.NewOperationFailedErrorWithCause(operation, err)
}
