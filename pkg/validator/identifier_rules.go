package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MaxTechStackItemLength is the maximum number of characters of a single tech stack entry.
const MaxTechStackItemLength = 50

// MaxTechStackItems caps the number of entries in a tech stack.
const MaxTechStackItems = 30

// IsObjectID reports whether id is a well-formed MongoDB object id.
func IsObjectID(id string) bool {
	_, err := bson.ObjectIDFromHex(id)
	return err == nil
}

func ValidObjectID(field, id string) Rule {
	return Rule{
		Check: func() bool {
			return IsObjectID(id)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("Invalid %s.", field),
			TranslationKey: "validation.object_id",
			TranslationValues: map[string]any{
				"field": field,
			},
			Err: ErrInvalidFormat,
		},
	}
}

// IsTechStack reports whether items is a non-empty list of non-blank entries
// of at most MaxTechStackItemLength characters each.
func IsTechStack(items []string) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if strings.TrimSpace(item) == "" || utf8.RuneCountInString(item) > MaxTechStackItemLength {
			return false
		}
	}
	return true
}

func ValidTechStack(field string, items []string) Rule {
	return Rule{
		Check: func() bool {
			return IsTechStack(items)
		},
		Error: ValidationError{
			Field: field,
			Message: fmt.Sprintf("%s must be a non-empty list of technologies of at most %d characters each.",
				field, MaxTechStackItemLength),
			TranslationKey: "validation.tech_stack",
			TranslationValues: map[string]any{
				"field": field,
				"max":   MaxTechStackItemLength,
			},
			Err: ErrInvalidFormat,
		},
	}
}
