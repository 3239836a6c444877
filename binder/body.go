package binder

import (
	"fmt"
	"net/http"
)

// Body dispatches to JSON or Form depending on the request's Content-Type.
func Body() func(r *http.Request, v any) error {
	jsonBinder := JSON()
	formBinder := Form()

	return func(r *http.Request, v any) error {
		ct := r.Header.Get("Content-Type")
		if ct == "" {
			return fmt.Errorf("%w: expected JSON or form body", ErrMissingContentType)
		}

		switch mt := mediaType(ct); mt {
		case "application/json":
			return jsonBinder(r, v)
		case "application/x-www-form-urlencoded", "multipart/form-data":
			return formBinder(r, v)
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mt)
		}
	}
}
