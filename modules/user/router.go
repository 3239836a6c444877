package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/portfolio/binder"
	"github.com/dmitrymomot/portfolio/handler"
	"github.com/dmitrymomot/portfolio/pkg/jwt"
)

type Handler struct {
	svc          *Service
	tokens       *jwt.Service
	errorHandler handler.ErrorHandler[handler.Context]
	loginLimiter func(http.Handler) http.Handler
	authError    jwt.ErrorFunc
}

type HandlerOption func(*Handler)

// WithLoginLimiter guards the login route, typically with a per-IP rate limit.
func WithLoginLimiter(mw func(http.Handler) http.Handler) HandlerOption {
	return func(h *Handler) {
		h.loginLimiter = mw
	}
}

// WithAuthErrorFunc renders requests to /me that carry no valid token.
func WithAuthErrorFunc(fn jwt.ErrorFunc) HandlerOption {
	return func(h *Handler) {
		h.authError = fn
	}
}

func NewHandler(svc *Service, tokens *jwt.Service, errorHandler handler.ErrorHandler[handler.Context], opts ...HandlerOption) *Handler {
	h := &Handler{svc: svc, tokens: tokens, errorHandler: errorHandler}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()

	authOpts := []jwt.MiddlewareOption{}
	if h.authError != nil {
		authOpts = append(authOpts, jwt.WithErrorFunc(h.authError))
	}

	r.With(jwt.Middleware(h.tokens, jwt.WithOptional())).Post("/register", handler.Wrap(h.register,
		handler.WithBinders[handler.Context, RegisterRequest](binder.Body()),
		handler.WithErrorHandler[handler.Context, RegisterRequest](h.errorHandler),
	))

	login := handler.Wrap(h.login,
		handler.WithBinders[handler.Context, LoginRequest](binder.Body()),
		handler.WithErrorHandler[handler.Context, LoginRequest](h.errorHandler),
	)
	if h.loginLimiter != nil {
		r.With(h.loginLimiter).Post("/login", login)
	} else {
		r.Post("/login", login)
	}

	r.Post("/logout", handler.Wrap(h.logout,
		handler.WithErrorHandler[handler.Context, struct{}](h.errorHandler),
	))
	r.With(jwt.Middleware(h.tokens, authOpts...)).Get("/me", handler.Wrap(h.me,
		handler.WithErrorHandler[handler.Context, struct{}](h.errorHandler),
	))

	return r
}
