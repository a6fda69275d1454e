package services

import (
	"errors"

	"github.com/coursecast/grade-service/internal/engine"
	apperrors "github.com/coursecast/grade-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
	ErrInternalError    = errors.New("internal server error")

	// Computation errors, re-exported so handlers depend on one package.
	ErrInvalidPolicy      = engine.ErrInvalidPolicy
	ErrInvalidGradeItem   = engine.ErrInvalidGradeItem
	ErrUnknownGradeLetter = engine.ErrUnknownGradeLetter

	// Import specific errors
	ErrUnsupportedFormat = errors.New("unsupported grade export format")
	ErrEmptyImport       = errors.New("grade export contains no data rows")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// ===== ERROR HELPERS =====

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

// IsInvalidInput reports whether the computation was aborted by bad input
// rather than an internal fault.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidPolicy) ||
		errors.Is(err, ErrInvalidGradeItem) ||
		errors.Is(err, ErrUnknownGradeLetter)
}
