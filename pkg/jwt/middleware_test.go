package jwt_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/portfolio/pkg/jwt"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	s := newService(t, time.Hour)
	token, _, err := s.Issue("user-1", "editor@example.com", "admin")
	require.NoError(t, err)

	tests := []struct {
		name       string
		setup      func(r *http.Request)
		wantStatus int
		wantUser   string
	}{
		{
			name:       "no token",
			setup:      func(*http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "cookie",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "token", Value: token})
			},
			wantStatus: http.StatusOK,
			wantUser:   "user-1",
		},
		{
			name: "bearer fallback",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+token)
			},
			wantStatus: http.StatusOK,
			wantUser:   "user-1",
		},
		{
			name: "malformed authorization",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Basic abc")
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "invalid cookie",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "token", Value: "junk"})
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var user string
			h := jwt.Middleware(s)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				claims, ok := jwt.ClaimsFromContext(r.Context())
				require.True(t, ok)
				user = claims.UserID()
			}))

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(r)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantUser, user)
		})
	}
}

func TestMiddlewareOptional(t *testing.T) {
	t.Parallel()

	s := newService(t, time.Hour)

	reached := false
	h := jwt.Middleware(s, jwt.WithOptional())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		_, ok := jwt.ClaimsFromContext(r.Context())
		assert.False(t, ok)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMiddlewareErrorFunc(t *testing.T) {
	t.Parallel()

	s := newService(t, time.Hour)

	var got error
	h := jwt.Middleware(s, jwt.WithErrorFunc(func(w http.ResponseWriter, r *http.Request, err error) {
		got = err
		w.WriteHeader(http.StatusForbidden)
	}))(http.NotFoundHandler())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.ErrorIs(t, got, jwt.ErrMissingToken)
}

func TestCookies(t *testing.T) {
	t.Parallel()

	s := newService(t, time.Hour)
	token, exp, err := s.Issue("user-1", "", "")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	s.SetCookie(w, token, exp)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Equal(t, token, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)

	w = httptest.NewRecorder()
	s.ClearCookie(w)
	cookies = w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
