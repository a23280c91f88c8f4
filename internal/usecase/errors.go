package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports that the referenced job id does not exist.
	ErrNotFound = errors.New("job not found")
	// ErrInvalidStatus reports a target status outside the enum.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInternal reports a store failure; the caller sees a 500.
	ErrInternal = errors.New("internal error")
)

// ValidationError names the first required field the submission is missing
// or the enum field carrying an out-of-domain value.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}
