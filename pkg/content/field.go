package content

import (
	"fmt"

	"github.com/dmitrymomot/portfolio/pkg/sanitizer"
	"github.com/dmitrymomot/portfolio/pkg/validator"
)

// Mode selects how strictly a field group is required.
type Mode int

const (
	// Create requires the group to carry content in at least one language.
	Create Mode = iota
	// Update validates the group only when at least one of its keys is present.
	Update
)

func (m Mode) String() string {
	if m == Update {
		return "update"
	}
	return "create"
}

// Result is an accepted field group.
type Result struct {
	Text Text
	// Provided lists the languages whose keys were present in the request.
	Provided []Lang
	// Skipped is set in Update mode when none of the group's keys were present.
	Skipped bool
}

// Changes returns the sanitized values of the provided languages only.
// Updates persist these so untouched translations stay as stored.
func (r Result) Changes() map[Lang]string {
	if r.Skipped {
		return nil
	}
	changes := make(map[Lang]string, len(r.Provided))
	for _, lang := range r.Provided {
		changes[lang] = r.Text.Get(lang)
	}
	return changes
}

// Localized validates and sanitizes one field group.
// The returned error is validator.ValidationErrors naming field.
func Localized(field string, in Input, mode Mode) (Result, error) {
	if mode == Update && !in.Touched() {
		return Result{Skipped: true}, nil
	}

	blank := true
	for _, lang := range Languages {
		if !sanitizer.IsWhitespaceOnly(in.Get(lang)) {
			blank = false
			break
		}
	}
	if blank {
		return Result{}, presenceError(field, mode)
	}

	var res Result
	for _, lang := range Languages {
		raw := in.Get(lang)
		if sanitizer.IsEmptyAfterSanitization(raw) {
			return Result{}, markupError(field)
		}
		res.Text.Set(lang, sanitizer.SanitizeInput(raw))
		if in.Has(lang) {
			res.Provided = append(res.Provided, lang)
		}
	}

	return res, nil
}

// OptionalLocalized validates a field group that may be left empty, such as a
// description. Untouched groups are skipped in both modes; touched groups
// only get the markup check.
func OptionalLocalized(field string, in Input) (Result, error) {
	if !in.Touched() {
		return Result{Skipped: true}, nil
	}

	var res Result
	for _, lang := range Languages {
		raw := in.Get(lang)
		if sanitizer.IsEmptyAfterSanitization(raw) {
			return Result{}, markupError(field)
		}
		res.Text.Set(lang, sanitizer.SanitizeInput(raw))
		if in.Has(lang) {
			res.Provided = append(res.Provided, lang)
		}
	}
	return res, nil
}

func presenceError(field string, mode Mode) error {
	msg := fmt.Sprintf("%s is required.", field)
	key := "validation.required"
	if mode == Update {
		msg = fmt.Sprintf("%s cannot be empty in all languages if provided for update.", field)
		key = "validation.required_all_languages"
	}

	return validator.Fail(validator.ValidationError{
		Field:             field,
		Message:           msg,
		TranslationKey:    key,
		TranslationValues: map[string]any{"field": field},
		Err:               validator.ErrFieldRequired,
	})
}

func markupError(field string) error {
	return validator.Fail(validator.ValidationError{
		Field:             field,
		Message:           fmt.Sprintf("Invalid characters detected in %s. HTML/script tags are not allowed.", field),
		TranslationKey:    "validation.markup",
		TranslationValues: map[string]any{"field": field},
		Err:               validator.ErrMarkupRejected,
	})
}
