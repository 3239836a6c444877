// Package handler turns typed handler functions into http.HandlerFunc.
//
// Wrap binds the request into R using the configured binders, runs the
// decorators and the handler, and renders the returned Response. Errors from
// binding, the handler or rendering go to the ErrorHandler, which by default
// writes the JSON error envelope:
//
//	{"error": {"code": "validation_error", "message": "title is required.", "details": {"title": ["title is required."]}}}
//
// A typical endpoint:
//
//	h := handler.HandlerFunc[handler.Context, CreateRequest](
//		func(ctx handler.Context, req CreateRequest) handler.Response {
//			item, err := svc.Create(ctx, req)
//			if err != nil {
//				return handler.Error(err)
//			}
//			return handler.JSON(item, handler.WithJSONStatus(http.StatusCreated))
//		},
//	)
//	r.Post("/", handler.Wrap(h, handler.WithBinders[handler.Context, CreateRequest](binder.Body())))
package handler
