package content

import (
	"fmt"

	"github.com/dmitrymomot/portfolio/pkg/sanitizer"
	"github.com/dmitrymomot/portfolio/pkg/validator"
)

// Optional validates a single-language optional field.
// An absent key yields nil. A present value is rejected only when it was made
// entirely of disallowed markup; an empty value means "clear the field".
func Optional(field string, raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	if sanitizer.IsEmptyAfterSanitization(*raw) {
		return nil, markupError(field)
	}
	v := sanitizer.SanitizeInput(*raw)
	return &v, nil
}

// Link is Optional followed by a URL shape check on non-empty values.
func Link(field string, raw *string) (*string, error) {
	v, err := Optional(field, raw)
	if err != nil || v == nil {
		return v, err
	}
	if err := validator.ApplyFirst(validator.OptionalURL(field, *v)); err != nil {
		return nil, err
	}
	return v, nil
}

// Position validates a present-but-optional scalar that must not be blank,
// such as a testimonial author's position.
func Position(field string, raw *string) (*string, error) {
	if raw != nil && sanitizer.IsWhitespaceOnly(*raw) {
		return nil, validator.Fail(validator.ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("%s cannot be empty if provided.", field),
			TranslationKey:    "validation.not_blank",
			TranslationValues: map[string]any{"field": field},
			Err:               validator.ErrFieldRequired,
		})
	}
	return Optional(field, raw)
}
