package validator

import (
	"fmt"
	"mime/multipart"
)

func RequiredFile(field string, fh *multipart.FileHeader) Rule {
	return Rule{
		Check: func() bool {
			return fh != nil && fh.Size > 0
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
