package scoring

import (
	"fmt"

	"github.com/repforge/repforge/internal/domain"
)

// ValidateSnapshot enforces the engine's input contract. Malformed records are
// rejected upstream, so a violation here means the record source is broken;
// the caller must fail the whole computation rather than drop the record.
func ValidateSnapshot(records []*domain.WorkoutRecord) error {
	for _, r := range records {
		if r.UserID == "" {
			return &domain.ContractViolationError{RecordID: r.ID, Field: "user_id", Reason: "missing owner"}
		}
		if r.Date.IsZero() {
			return &domain.ContractViolationError{RecordID: r.ID, Field: "date", Reason: "zero date"}
		}
		if r.DurationMinutes < 0 {
			return &domain.ContractViolationError{RecordID: r.ID, Field: "duration_minutes", Reason: "negative duration"}
		}
		for i, e := range r.Exercises {
			field := fmt.Sprintf("exercises[%d]", i)
			switch {
			case e.Name == "":
				return &domain.ContractViolationError{RecordID: r.ID, Field: field + ".name", Reason: "empty exercise name"}
			case e.Sets < 0:
				return &domain.ContractViolationError{RecordID: r.ID, Field: field + ".sets", Reason: "negative sets"}
			case e.Reps < 0:
				return &domain.ContractViolationError{RecordID: r.ID, Field: field + ".reps", Reason: "negative reps"}
			case e.Weight < 0:
				return &domain.ContractViolationError{RecordID: r.ID, Field: field + ".weight", Reason: "negative weight"}
			}
		}
	}
	return nil
}
