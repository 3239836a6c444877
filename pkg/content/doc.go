// Package content validates and sanitizes localized CMS input.
//
// Content fields such as a gallery title are submitted as a field group of up
// to three language variants (title_en, title_so, title_ar). Localized turns
// such a group into a sanitized Text or a validation error naming the group:
//
//	res, err := content.Localized("title", content.Input{En: req.TitleEn, So: req.TitleSo, Ar: req.TitleAr}, content.Create)
//	if err != nil {
//	    return err // validator.ValidationErrors, HTTP 400
//	}
//	item.Title = res.Text
//
// Rules applied to a group, in order:
//
//  1. In Update mode a group whose keys are all absent is skipped.
//  2. If every variant is absent or whitespace-only the group is rejected
//     (validator.ErrFieldRequired). This check runs on raw values.
//  3. Every variant is sanitized; if any one variant consisted only of
//     disallowed markup the whole group is rejected (validator.ErrMarkupRejected).
//
// A group may legitimately hold empty variants: title_en="My Project" with
// empty Somali and Arabic variants is accepted as {en: "My Project", so: "", ar: ""}.
//
// Categories normalizes a category value that may be a JSON array string, a
// bare string or an array, and checks it against a closed set. Optional, Link
// and Position handle single-language scalar fields.
//
// Everything in this package is a pure function of its input.
package content
