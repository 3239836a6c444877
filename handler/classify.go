package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/dmitrymomot/portfolio/binder"
	"github.com/dmitrymomot/portfolio/pkg/file"
	"github.com/dmitrymomot/portfolio/pkg/validator"
)

// ErrorInfo is the classification of an error for rendering and logging.
type ErrorInfo struct {
	StatusCode      int
	Code            string
	Message         string
	Details         map[string][]string
	TranslationKey  string
	TranslationArgs []string
	LogLevel        slog.Level
}

// Detail returns the envelope error without a localized message.
func (i ErrorInfo) Detail() ErrorDetail {
	return ErrorDetail{Code: i.Code, Message: i.Message, Details: i.Details}
}

// Classify maps err to a status code and client-facing message. Validation
// failures surface verbatim with status 400; unknown errors become a generic 500.
func Classify(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode:     http.StatusInternalServerError,
		Code:           ErrInternal.Key,
		Message:        ErrInternal.Message,
		TranslationKey: "errors." + ErrInternal.Key,
	}

	var httpErr HTTPError
	switch {
	case validator.IsValidationError(err):
		errs := validator.ExtractValidationErrors(err)
		first, _ := errs.First()
		info.StatusCode = http.StatusBadRequest
		info.Code = "validation_error"
		info.Message = first.Message
		info.TranslationKey = first.TranslationKey
		info.TranslationArgs = translationArgs(first.TranslationValues)
		info.Details = make(map[string][]string, len(errs))
		for _, field := range errs.Fields() {
			info.Details[field] = errs.Get(field)
		}

	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Code = httpErr.Key
		info.Message = httpErr.Error()
		info.TranslationKey = "errors." + httpErr.Key

	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		info.StatusCode = ErrUnsupportedMediaType.Code
		info.Code = ErrUnsupportedMediaType.Key
		info.Message = ErrUnsupportedMediaType.Message
		info.TranslationKey = "errors." + ErrUnsupportedMediaType.Key

	case errors.Is(err, file.ErrNotAnImage):
		info.StatusCode = ErrInvalidImage.Code
		info.Code = ErrInvalidImage.Key
		info.Message = ErrInvalidImage.Message
		info.TranslationKey = "errors." + ErrInvalidImage.Key

	case errors.Is(err, binder.ErrRequestTooLarge), errors.Is(err, file.ErrFileTooLarge):
		info.StatusCode = ErrRequestTooLarge.Code
		info.Code = ErrRequestTooLarge.Key
		info.Message = ErrRequestTooLarge.Message
		info.TranslationKey = "errors." + ErrRequestTooLarge.Key

	case errors.Is(err, binder.ErrInvalidJSON), errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrInvalidQuery), errors.Is(err, binder.ErrInvalidPath):
		info.StatusCode = http.StatusBadRequest
		info.Code = ErrBadRequest.Key
		info.Message = err.Error()
		info.TranslationKey = "errors." + ErrBadRequest.Key
	}

	info.LogLevel = logLevel(info.StatusCode)
	return info
}

func logLevel(status int) slog.Level {
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func translationArgs(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(values)*2)
	for _, k := range keys {
		args = append(args, k, fmt.Sprint(values[k]))
	}
	return args
}
