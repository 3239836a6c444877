package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/portfolio/binder"
	"github.com/dmitrymomot/portfolio/handler"
)

type echoRequest struct {
	Name string `json:"name"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) handler.JSONResponse {
	t.Helper()
	var got handler.JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	return got
}

func TestWrap(t *testing.T) {
	t.Parallel()

	h := handler.HandlerFunc[handler.Context, echoRequest](func(ctx handler.Context, req echoRequest) handler.Response {
		if req.Name == "missing" {
			return handler.Error(handler.ErrNotFound)
		}
		return handler.Created(map[string]string{"name": req.Name})
	})
	wrapped := handler.Wrap(h, handler.WithBinders[handler.Context, echoRequest](binder.JSON()))

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"go"}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		wrapped(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, map[string]any{"name": "go"}, decode(t, w).Data)
	})

	t.Run("handler error", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"missing"}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		wrapped(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		got := decode(t, w)
		require.NotNil(t, got.Error)
		assert.Equal(t, "not_found", got.Error.Code)
	})

	t.Run("binder error", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		wrapped(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "bad_request", decode(t, w).Error.Code)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`name=go`))
		r.Header.Set("Content-Type", "text/plain")
		w := httptest.NewRecorder()
		wrapped(w, r)

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})
}

func TestWrap_DecoratorsAndNilResponse(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	var handled error
	wrapped := handler.Wrap(
		handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response { return nil }),
		handler.WithDecorators(mark("outer"), mark("inner")),
		handler.WithErrorHandler[handler.Context, struct{}](func(_ handler.Context, err error) { handled = err }),
	)

	wrapped(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner"}, order)
	assert.True(t, errors.Is(handled, handler.ErrNilResponse))
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	require.NoError(t, handler.Empty().Render(w, httptest.NewRequest(http.MethodDelete, "/", nil)))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = httptest.NewRecorder()
	require.NoError(t, handler.EmptyWithStatus(http.StatusAccepted).Render(w, httptest.NewRequest(http.MethodPost, "/", nil)))
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestJSON_Meta(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	resp := handler.JSON([]int{1, 2}, handler.WithJSONMeta(map[string]any{"total": 2}))
	require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))

	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	got := decode(t, w)
	assert.Equal(t, []any{float64(1), float64(2)}, got.Data)
	assert.Equal(t, map[string]any{"total": float64(2)}, got.Meta)
}
