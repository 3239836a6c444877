package validator

import (
	"fmt"
	"slices"
	"strings"
)

func InListString(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must be one of: %s.", field, strings.Join(allowedValues, ", ")),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": strings.Join(allowedValues, ", "),
			},
			Err: ErrInvalidValue,
		},
	}
}

// ValidCategories checks every value against the closed category set and
// names all offending members in the message.
func ValidCategories(field string, values, allowedCategories []string) Rule {
	var invalid []string
	for _, v := range values {
		if !slices.Contains(allowedCategories, v) {
			invalid = append(invalid, v)
		}
	}

	return Rule{
		Check: func() bool {
			return len(invalid) == 0
		},
		Error: ValidationError{
			Field: field,
			Message: fmt.Sprintf("Invalid %s: %s. Allowed values: %s.",
				field, strings.Join(invalid, ", "), strings.Join(allowedCategories, ", ")),
			TranslationKey: "validation.invalid_category",
			TranslationValues: map[string]any{
				"field":   field,
				"invalid": strings.Join(invalid, ", "),
				"allowed": strings.Join(allowedCategories, ", "),
			},
			Err: ErrInvalidCategory,
		},
	}
}
