package skill

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/portfolio/binder"
	"github.com/dmitrymomot/portfolio/handler"
)

type Handler struct {
	svc          *Service
	auth         func(http.Handler) http.Handler
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewHandler mounts the skill routes. auth guards every write.
func NewHandler(svc *Service, auth func(http.Handler) http.Handler, errorHandler handler.ErrorHandler[handler.Context]) *Handler {
	return &Handler{svc: svc, auth: auth, errorHandler: errorHandler}
}

func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()
	path := binder.Path(chi.URLParam)

	r.Get("/", handler.Wrap(h.list,
		handler.WithBinders[handler.Context, ListRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, ListRequest](h.errorHandler),
	))
	r.Get("/{id}", handler.Wrap(h.get,
		handler.WithBinders[handler.Context, IDRequest](path),
		handler.WithErrorHandler[handler.Context, IDRequest](h.errorHandler),
	))

	r.Group(func(r chi.Router) {
		if h.auth != nil {
			r.Use(h.auth)
		}

		r.Post("/", handler.Wrap(h.create,
			handler.WithBinders[handler.Context, Request](binder.Body()),
			handler.WithErrorHandler[handler.Context, Request](h.errorHandler),
		))

		update := handler.Wrap(h.update,
			handler.WithBinders[handler.Context, Request](binder.Body(), path),
			handler.WithErrorHandler[handler.Context, Request](h.errorHandler),
		)
		r.Put("/{id}", update)
		r.Patch("/{id}", update)

		r.Delete("/{id}", handler.Wrap(h.delete,
			handler.WithBinders[handler.Context, IDRequest](path),
			handler.WithErrorHandler[handler.Context, IDRequest](h.errorHandler),
		))
	})

	return r
}
