package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/portfolio/pkg/i18n"
)

func TestGetLocale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(context.Background()))
	assert.Equal(t, "so", i18n.GetLocale(i18n.SetLocale(context.Background(), "so")))
	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(i18n.SetLocale(context.Background(), "")))
}

func TestDefaultLangExtractor(t *testing.T) {
	t.Parallel()

	extract := i18n.DefaultLangExtractor(i18n.WithSupportedLanguages("en", "so", "ar"))

	tests := []struct {
		name     string
		setup    func(r *http.Request)
		expected string
	}{
		{"nothing", func(*http.Request) {}, ""},
		{"accept-language exact", func(r *http.Request) { r.Header.Set("Accept-Language", "so") }, "so"},
		{"accept-language region", func(r *http.Request) { r.Header.Set("Accept-Language", "ar-SA,en;q=0.5") }, "ar"},
		{"accept-language q-values", func(r *http.Request) { r.Header.Set("Accept-Language", "en;q=0.2, so;q=0.9") }, "so"},
		{"unsupported only", func(r *http.Request) { r.Header.Set("Accept-Language", "ja") }, ""},
		{"cookie wins", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "lang", Value: "ar"})
			r.Header.Set("Accept-Language", "so")
		}, "ar"},
		{"unsupported cookie falls through", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "lang", Value: "de"})
			r.Header.Set("Accept-Language", "so")
		}, "so"},
		{"query param", func(r *http.Request) {
			q := r.URL.Query()
			q.Set("lang", "so")
			r.URL.RawQuery = q.Encode()
		}, "so"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(r)
			assert.Equal(t, tt.expected, extract(r))
		})
	}
}

func TestDefaultLangExtractor_CustomNames(t *testing.T) {
	t.Parallel()

	extract := i18n.DefaultLangExtractor(
		i18n.WithSupportedLanguages("en", "so", "ar"),
		i18n.WithCookieName("locale"),
		i18n.WithQueryParamName("hl"),
	)

	r := httptest.NewRequest(http.MethodGet, "/?lang=so&hl=ar", nil)
	assert.Equal(t, "ar", extract(r))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "lang", Value: "ar"})
	r.AddCookie(&http.Cookie{Name: "locale", Value: "so"})
	assert.Equal(t, "so", extract(r))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := i18n.Middleware(i18n.DefaultLangExtractor(i18n.WithSupportedLanguages("en", "so", "ar")))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = i18n.GetLocale(r.Context())
		}),
	)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Language", "ar")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, "ar", got)
	assert.Equal(t, "ar", w.Header().Get("Content-Language"))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, i18n.DefaultLanguage, got)
}
