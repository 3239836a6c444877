// Package i18n renders user-facing messages in the languages the portfolio
// content is published in: English, Somali and Arabic.
//
// Translations live in YAML files embedded from the locales directory, one
// top-level map per language code. Keys are dot-separated paths and values may
// reference named parameters with the `%{name}` syntax:
//
//	en:
//	  validation:
//	    required: "%{field} is required."
//
// The Middleware negotiates the request language (cookie, query parameter,
// then Accept-Language matched through golang.org/x/text/language) and stores
// it in the request context, where Translator.Tc and GetLocale pick it up.
//
//	tr, err := i18n.NewTranslator(ctx, i18n.Embedded(), i18n.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(tr.SupportedLanguages()...))))
//
//	msg := tr.Tc(ctx, "validation.required", "field", "title")
package i18n
