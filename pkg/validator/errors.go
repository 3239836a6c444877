package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is absent or whitespace-only.
	ErrFieldRequired = errors.New("field is required")

	// ErrMarkupRejected is returned when non-empty input consisted only of disallowed markup.
	ErrMarkupRejected = errors.New("input contains only disallowed markup")

	// ErrInvalidCategoryFormat is returned when a category value cannot be parsed or is empty.
	ErrInvalidCategoryFormat = errors.New("invalid category format")

	// ErrInvalidCategory is returned when a category is outside the allowed set.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidLength is returned when a field has an invalid length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidValue is returned when a field has an invalid value.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidFormat is returned when a scalar such as a URL or an object id fails its shape check.
	ErrInvalidFormat = errors.New("invalid format")
)
