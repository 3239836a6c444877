package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s is required.", field),
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
			Err: ErrFieldRequired,
		},
	}
}

// MaxLenString counts characters, not bytes, so Arabic and Latin input are measured alike.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must be at most %d characters long.", field, max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
			Err: ErrInvalidLength,
		},
	}
}
