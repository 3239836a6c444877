package handler

import (
	"log/slog"

	"github.com/dmitrymomot/portfolio/pkg/environment"
	"github.com/dmitrymomot/portfolio/pkg/i18n"
	"github.com/dmitrymomot/portfolio/pkg/logger"
	"github.com/dmitrymomot/portfolio/pkg/requestid"
)

// Translator renders translation keys; *i18n.Translator satisfies it.
type Translator interface {
	T(lang, key string, args ...string) string
	HasTranslation(lang, key string) bool
}

// NewErrorHandler logs every failed request (client errors at Warn, server
// errors at Error) and renders the JSON error envelope. When tr knows the
// error's key in the request language, the envelope carries localized_message.
// In development the cause of a 500 is included under details.internal.
func NewErrorHandler(log *slog.Logger, tr Translator) ErrorHandler[Context] {
	if log == nil {
		log = logger.Nop()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := Classify(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request failed",
			logger.Error(err),
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.HTTP(r.Method, r.URL.Path, info.StatusCode),
			logger.Component("error_handler"),
		)

		detail := info.Detail()
		if tr != nil && info.TranslationKey != "" {
			lang := i18n.GetLocale(r.Context())
			if tr.HasTranslation(lang, info.TranslationKey) {
				detail.LocalizedMessage = tr.T(lang, info.TranslationKey, info.TranslationArgs...)
			}
		}

		if info.StatusCode >= 500 && environment.FromContext(r.Context()).ExposesInternals() {
			detail.Details = map[string][]string{"internal": {err.Error()}}
		}

		if renderErr := JSONError(info.StatusCode, detail).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}
