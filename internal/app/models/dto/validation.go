package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError converts a binding or validation error into an
// ErrorDetail. Validator field errors get per-field messages; anything
// else falls back to a generic invalid-format detail.
func HandleValidationError(err error) *ErrorDetail {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, formatFieldError(fieldErr))
		}

		errorDetail := NewErrorDetail(ErrorCodeValidationFailed, "Validation failed")
		errorDetail = errorDetail.WithDetails(strings.Join(messages, "; "))
		if len(validationErrors) == 1 {
			errorDetail = errorDetail.WithField(validationErrors[0].Field())
		}
		return errorDetail
	}

	errorDetail := NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format")
	return errorDetail.WithDetails(err.Error())
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
