// FILE: internal/pkg/serverutils/validation.go
package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"talent-search-be/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest checks struct validate tags and converts failures into a
// VALIDATION error carrying a per-field breakdown.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Internal("Request validation failed.").WithCause(err)
	}

	fields := make(map[string]interface{}, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = fmt.Sprintf("failed on '%s' rule", fe.Tag())
	}

	return apperror.Validation("Invalid request payload.").WithDetails(map[string]interface{}{
		"fields": fields,
	})
}
