package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/portfolio/pkg/httpserver"
	"github.com/dmitrymomot/portfolio/pkg/logger"
)

func decodeHealth(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	httpserver.LivenessHandler()(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeHealth(t, w)["status"])
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	ok := func(context.Context) error { return nil }
	fail := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		checks     map[string]httpserver.Check
		wantStatus int
		wantBody   string
		wantChecks map[string]any
	}{
		{
			name:       "no checks",
			checks:     nil,
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name:       "all healthy",
			checks:     map[string]httpserver.Check{"mongo": ok, "redis": ok},
			wantStatus: http.StatusOK,
			wantBody:   "ok",
			wantChecks: map[string]any{"mongo": "ok", "redis": "ok"},
		},
		{
			name:       "one failing",
			checks:     map[string]httpserver.Check{"mongo": ok, "redis": fail},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "unavailable",
			wantChecks: map[string]any{"mongo": "ok", "redis": "unavailable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			httpserver.ReadinessHandler(logger.Nop(), tt.checks)(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeHealth(t, w)
			assert.Equal(t, tt.wantBody, body["status"])
			if tt.wantChecks != nil {
				assert.Equal(t, tt.wantChecks, body["checks"])
			}
		})
	}
}
