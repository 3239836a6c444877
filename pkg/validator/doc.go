// Package validator provides composable validation rules with
// translation-friendly error metadata.
//
// A Rule couples a boolean Check with the ValidationError reported when the
// check fails. Apply evaluates every rule and aggregates the failures into
// ValidationErrors; ApplyFirst stops at the first failure, which is what the
// request handlers use since a rejected request reports one field at a time.
//
//	err := validator.ApplyFirst(
//	    validator.ValidObjectID("id", id),
//	    validator.OptionalURL("link", link),
//	    validator.ValidTechStack("techStack", stack),
//	)
//
// Every ValidationError carries a sentinel in Err (ErrFieldRequired,
// ErrMarkupRejected, ErrInvalidCategoryFormat, ErrInvalidCategory,
// ErrInvalidFormat, ...). ValidationErrors unwraps to all its members, so the
// kind of failure is checked with errors.Is:
//
//	if errors.Is(err, validator.ErrMarkupRejected) {
//	    // user sent only disallowed markup
//	}
//
// TranslationKey and TranslationValues feed the i18n layer; Message is the
// canonical English text returned to API clients.
//
// The package is stateless and goroutine-safe.
package validator
