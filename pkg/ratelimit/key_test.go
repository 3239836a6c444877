package ratelimit_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/portfolio/pkg/ratelimit"
)

func TestComposite(t *testing.T) {
	t.Parallel()

	fixed := func(v string) ratelimit.KeyFunc {
		return func(*http.Request) string { return v }
	}

	tests := []struct {
		name  string
		funcs []ratelimit.KeyFunc
		want  string
	}{
		{"no funcs", nil, ""},
		{"all empty", []ratelimit.KeyFunc{fixed(""), fixed("")}, ""},
		{"single", []ratelimit.KeyFunc{fixed("a")}, "a"},
		{"skips empty", []ratelimit.KeyFunc{fixed("a"), fixed(""), fixed("b")}, "a:b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			assert.Equal(t, tt.want, ratelimit.Composite(tt.funcs...)(r))
		})
	}

	t.Run("long keys are hashed", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		key := ratelimit.Composite(fixed(strings.Repeat("x", 80)))(r)
		assert.Len(t, key, 32)
	})
}

func TestPrefixed(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.9:1"

	assert.Equal(t, "login:192.0.2.9", ratelimit.Prefixed("login", ratelimit.ByClientIP)(r))
	assert.Empty(t, ratelimit.Prefixed("login", func(*http.Request) string { return "" })(r))
}
