// internal/validate/validate.go
package validate

import (
	"strings"
)

// FieldError reports one constraint violation. Field is always the
// exact name of the form field the failing value came from, because
// callers filter the error list by field name to decorate their forms.
type FieldError struct {
	Field   string
	Message string
}

// Result collects the violations found in one form. A Result with no
// errors means the form passed every check this package performs.
// Validation never produces a Go error: bad input is data, not a fault.
type Result struct {
	Errors []FieldError
}

// Valid reports whether the form passed validation.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// HasFieldError reports whether any violation was recorded for field.
func (r Result) HasFieldError(field string) bool {
	for _, e := range r.Errors {
		if e.Field == field {
			return true
		}
	}
	return false
}

func (r *Result) add(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

// requireText records an error when the value is empty after trimming.
func (r *Result) requireText(field, value string) {
	if strings.TrimSpace(value) == "" {
		r.add(field, field+" is required")
	}
}

// checkRating records an error when a present rating falls outside
// [1,5]. Boundary values 1 and 5 are valid. A nil rating is fine:
// absent and null are treated identically.
func (r *Result) checkRating(field string, rating *float64) {
	if rating == nil {
		return
	}
	if *rating < 1 || *rating > 5 {
		r.add(field, field+" must be between 1 and 5")
	}
}
