package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// ValidEmail validates that a string is a valid email address using RFC 5322.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 || parts[0] == "" {
				return false
			}

			// Domain must contain at least one dot and cannot start/end with dot
			domain := parts[1]
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must be a valid email address.", field),
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
			Err: ErrInvalidFormat,
		},
	}
}

// IsURL reports whether value parses as an absolute URL with scheme and host.
func IsURL(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != ""
}

// OptionalURL accepts an empty value; anything else must be a valid URL.
func OptionalURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value == "" || IsURL(value)
		},
		Error: urlError(field),
	}
}

func urlError(field string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("Invalid %s URL.", field),
		TranslationKey: "validation.url",
		TranslationValues: map[string]any{
			"field": field,
		},
		Err: ErrInvalidFormat,
	}
}
