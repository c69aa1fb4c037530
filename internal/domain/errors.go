package domain

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrNotFound  = errors.New("record not found")
	ErrInvalidID = errors.New("invalid id")
	ErrForbidden = errors.New("access forbidden: you don't own this resource")
)

// ContractViolationError reports a workout record that reached the scoring
// engine in a state the input contract forbids (zero date, negative counts).
// The whole computation is rejected; partial aggregation would silently
// misstate scores.
type ContractViolationError struct {
	RecordID string
	Field    string
	Reason   string
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("input contract violation: record %q field %q: %s", e.RecordID, e.Field, e.Reason)
}

// IsContractViolation reports whether err is (or wraps) a contract violation.
func IsContractViolation(err error) bool {
	var cv *ContractViolationError
	return errors.As(err, &cv)
}
