package validator

import "fmt"

// MaxLenSlice caps the number of items in a list.
func MaxLenSlice[T any](field string, value []T, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must contain at most %d items.", field, max),
			TranslationKey: "validation.max_items",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
			Err: ErrInvalidLength,
		},
	}
}
