package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/portfolio/pkg/sanitizer"
	"github.com/dmitrymomot/portfolio/pkg/validator"
)

// ErrMalformedList is returned when a list value cannot be read as strings.
var ErrMalformedList = errors.New("malformed list value")

// List is a raw list of strings as sent by clients. It accepts a JSON array,
// a JSON string (itself possibly a JSON array) or repeated form values.
type List struct {
	raw     []string
	present bool
	err     error
}

// NewList builds a present List from raw values.
func NewList(values ...string) List {
	return List{raw: values, present: true}
}

// Present reports whether the key was sent.
func (l List) Present() bool {
	return l.present
}

// Raw returns the values as received.
func (l List) Raw() []string {
	return l.raw
}

// UnmarshalJSON never fails on shape errors; they are reported by ParseList
// so the caller can name the field.
func (l *List) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = List{}
		return nil
	}

	*l = List{present: true}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		l.raw = []string{s}
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		l.raw = items
		return nil
	}

	l.err = ErrMalformedList
	return nil
}

// UnmarshalValues receives repeated form values.
func (l *List) UnmarshalValues(values []string) error {
	*l = List{raw: values, present: true}
	return nil
}

// ParseList flattens a List into trimmed strings. Elements that look like a
// JSON array or a JSON string are decoded; anything else is a bare token.
// Blank members are kept so callers can reject them.
func ParseList(l List) ([]string, error) {
	if l.err != nil {
		return nil, l.err
	}

	var out []string
	for _, item := range l.raw {
		item = strings.TrimSpace(item)
		switch {
		case strings.HasPrefix(item, "["):
			var items []string
			if err := json.Unmarshal([]byte(item), &items); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedList, err)
			}
			out = append(out, items...)
		case strings.HasPrefix(item, `"`):
			var s string
			if err := json.Unmarshal([]byte(item), &s); err != nil {
				out = append(out, item)
				continue
			}
			out = append(out, s)
		default:
			out = append(out, item)
		}
	}

	for i := range out {
		out[i] = strings.TrimSpace(out[i])
	}
	return out, nil
}

// Categories normalizes a category list (trimmed, de-duplicated) and checks
// every member against allowed. Matching is exact: "frontend" is not FRONTEND.
func Categories(field string, raw List, allowed []string) ([]string, error) {
	values, err := ParseList(raw)
	if err != nil {
		return nil, listFormatError(field, fmt.Sprintf("Invalid %s format.", field), "validation.list_format")
	}

	if len(sanitizer.FilterEmpty(values)) == 0 {
		return nil, listFormatError(field, fmt.Sprintf("%s must contain at least one value.", field), "validation.list_empty")
	}
	if slices.Contains(values, "") {
		return nil, listFormatError(field, fmt.Sprintf("Invalid %s format.", field), "validation.list_format")
	}

	values = sanitizer.RemoveDuplicates(values)
	if err := validator.ApplyFirst(validator.ValidCategories(field, values, allowed)); err != nil {
		return nil, err
	}

	return values, nil
}

// TechStack normalizes a technology list (trimmed, de-duplicated), applies the
// shape check to the entries as sent and then sanitizes them.
func TechStack(field string, raw List) ([]string, error) {
	values, err := ParseList(raw)
	if err != nil {
		return nil, validator.Fail(validator.ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("Invalid %s format.", field),
			TranslationKey:    "validation.list_format",
			TranslationValues: map[string]any{"field": field},
			Err:               validator.ErrInvalidFormat,
		})
	}

	values = sanitizer.RemoveDuplicates(values)
	if err := validator.ApplyFirst(
		validator.ValidTechStack(field, values),
		validator.MaxLenSlice(field, values, validator.MaxTechStackItems),
	); err != nil {
		return nil, err
	}

	for _, v := range values {
		if sanitizer.IsEmptyAfterSanitization(v) {
			return nil, markupError(field)
		}
	}
	for i, v := range values {
		values[i] = sanitizer.SanitizeInput(v)
	}
	return values, nil
}

func listFormatError(field, msg, key string) error {
	return validator.Fail(validator.ValidationError{
		Field:             field,
		Message:           msg,
		TranslationKey:    key,
		TranslationValues: map[string]any{"field": field},
		Err:               validator.ErrInvalidCategoryFormat,
	})
}
