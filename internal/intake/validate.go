package intake

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateResults checks every record against the result schema. The first
// violation fails the whole batch so partially-filled output is never emitted.
func ValidateResults(results []IntakeResult) error {
	for i := range results {
		if err := validate.Struct(&results[i]); err != nil {
			return fmt.Errorf("%w: record %d (%s): %v", ErrValidation, i, results[i].Practice, err)
		}
	}
	return nil
}

// ValidateTargets rejects a run before any network call when the configured
// target list is empty or malformed.
func ValidateTargets(targets []PracticeTarget) error {
	if len(targets) == 0 {
		return fmt.Errorf("%w: no practice targets configured", ErrValidation)
	}
	for i := range targets {
		if err := validate.Struct(&targets[i]); err != nil {
			return fmt.Errorf("%w: target %d: %v", ErrValidation, i, err)
		}
	}
	return nil
}
