package handler_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/portfolio/binder"
	"github.com/dmitrymomot/portfolio/handler"
	"github.com/dmitrymomot/portfolio/pkg/content"
	"github.com/dmitrymomot/portfolio/pkg/environment"
	"github.com/dmitrymomot/portfolio/pkg/i18n"
	"github.com/dmitrymomot/portfolio/pkg/validator"
)

func markupError(t *testing.T) error {
	t.Helper()
	bad := "<script>x</script>"
	ok := "Valid"
	_, err := content.Localized("title", content.Input{En: &bad, So: &ok}, content.Create)
	require.Error(t, err)
	return err
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
		level   slog.Level
	}{
		{
			name:    "validation error is verbatim",
			err:     validator.Fail(validator.ValidationError{Field: "title", Message: "title is required.", Err: validator.ErrFieldRequired}),
			status:  http.StatusBadRequest,
			code:    "validation_error",
			message: "title is required.",
			level:   slog.LevelWarn,
		},
		{
			name:    "wrapped validation error",
			err:     fmt.Errorf("create gallery: %w", validator.Fail(validator.ValidationError{Field: "categories", Message: "Invalid categories format."})),
			status:  http.StatusBadRequest,
			code:    "validation_error",
			message: "Invalid categories format.",
			level:   slog.LevelWarn,
		},
		{
			name:    "http error",
			err:     handler.ErrNotFound,
			status:  http.StatusNotFound,
			code:    "not_found",
			message: handler.ErrNotFound.Message,
			level:   slog.LevelWarn,
		},
		{
			name:    "unsupported media type",
			err:     fmt.Errorf("%w: text/plain", binder.ErrUnsupportedMediaType),
			status:  http.StatusUnsupportedMediaType,
			code:    "unsupported_media_type",
			message: handler.ErrUnsupportedMediaType.Message,
			level:   slog.LevelWarn,
		},
		{
			name:    "unknown error is hidden",
			err:     errors.New("mongo: connection refused"),
			status:  http.StatusInternalServerError,
			code:    "internal",
			message: handler.ErrInternal.Message,
			level:   slog.LevelError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := handler.Classify(tt.err)
			assert.Equal(t, tt.status, info.StatusCode)
			assert.Equal(t, tt.code, info.Code)
			assert.Equal(t, tt.message, info.Message)
			assert.Equal(t, tt.level, info.LogLevel)
		})
	}
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewTranslator(context.Background(), i18n.Embedded())
	require.NoError(t, err)

	t.Run("localized validation message", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		log := slog.New(slog.NewTextHandler(&logs, nil))
		eh := handler.NewErrorHandler(log, tr)

		r := httptest.NewRequest(http.MethodPost, "/api/gallery", nil)
		r = r.WithContext(i18n.SetLocale(r.Context(), "ar"))
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, r), markupError(t))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		got := decode(t, w)
		require.NotNil(t, got.Error)
		assert.Equal(t, "Invalid characters detected in title. HTML/script tags are not allowed.", got.Error.Message)
		assert.Equal(t, tr.T("ar", "validation.markup", "field", "title"), got.Error.LocalizedMessage)
		assert.NotEqual(t, got.Error.Message, got.Error.LocalizedMessage)
		assert.Equal(t, map[string][]string{"title": {got.Error.Message}}, got.Error.Details)
		assert.Contains(t, logs.String(), "level=WARN")
	})

	t.Run("internal error details only in development", func(t *testing.T) {
		t.Parallel()

		eh := handler.NewErrorHandler(nil, nil)
		cause := errors.New("boom")

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, r), cause)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, decode(t, w).Error.Details)

		r = r.WithContext(environment.WithContext(r.Context(), environment.Development))
		w = httptest.NewRecorder()
		eh(handler.NewContext(w, r), cause)
		assert.Equal(t, map[string][]string{"internal": {"boom"}}, decode(t, w).Error.Details)
	})
}
