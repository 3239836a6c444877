package jwt

import (
	"net/http"
	"strings"
)

// Extractor pulls a raw token from a request.
type Extractor func(r *http.Request) (string, error)

// ErrorFunc writes the response for a rejected request.
type ErrorFunc func(w http.ResponseWriter, r *http.Request, err error)

// CookieExtractor reads the token from the named cookie.
func CookieExtractor(name string) Extractor {
	return func(r *http.Request) (string, error) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", ErrMissingToken
		}
		return c.Value, nil
	}
}

// BearerExtractor reads "Authorization: Bearer <token>".
func BearerExtractor(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", ErrMissingToken
	}
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrInvalidToken
	}
	return strings.TrimSpace(token), nil
}

// FirstOf returns the first token any extractor finds.
func FirstOf(extractors ...Extractor) Extractor {
	return func(r *http.Request) (string, error) {
		err := ErrMissingToken
		for _, ex := range extractors {
			token, exErr := ex(r)
			if exErr == nil {
				return token, nil
			}
			if exErr != ErrMissingToken {
				err = exErr
			}
		}
		return "", err
	}
}

type middlewareConfig struct {
	extractor Extractor
	onError   ErrorFunc
	optional  bool
}

type MiddlewareOption func(*middlewareConfig)

func WithErrorFunc(fn ErrorFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.onError = fn
		}
	}
}

// WithOptional lets requests without a valid token through unauthenticated.
func WithOptional() MiddlewareOption {
	return func(c *middlewareConfig) {
		c.optional = true
	}
}

func defaultErrorFunc(w http.ResponseWriter, _ *http.Request, _ error) {
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}

// Middleware requires a valid token, read from the service's cookie with a
// Bearer header fallback.
func Middleware(s *Service, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		extractor: FirstOf(CookieExtractor(s.CookieName()), BearerExtractor),
		onError:   defaultErrorFunc,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := authenticate(s, cfg.extractor, r)
			if err != nil {
				if cfg.optional {
					next.ServeHTTP(w, r)
					return
				}
				cfg.onError(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func authenticate(s *Service, ex Extractor, r *http.Request) (*Claims, error) {
	token, err := ex(r)
	if err != nil {
		return nil, err
	}
	return s.Parse(token)
}
