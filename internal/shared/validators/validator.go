package validators

import (
	"github.com/go-playground/validator/v10"
)

// Aliases so callers depend on this package instead of the validator module
// directly.
type (
	Validate         = validator.Validate
	ValidationErrors = validator.ValidationErrors
	FieldError       = validator.FieldError
)

// New creates a new validator instance.
func New() *Validate {
	return validator.New()
}
