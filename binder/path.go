package binder

import (
	"fmt"
	"net/http"
)

// Path binds route parameters to `path` tagged fields using extractor,
// typically chi.URLParam.
func Path(extractor func(r *http.Request, key string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor is nil", ErrInvalidPath)
		}

		rv, err := structValue(v, ErrInvalidPath)
		if err != nil {
			return err
		}

		values := make(map[string][]string)
		rt := rv.Type()
		for i := range rt.NumField() {
			name := tagName(rt.Field(i), "path")
			if name == "" {
				continue
			}
			if val := extractor(r, name); val != "" {
				values[name] = []string{val}
			}
		}

		return bindValues(v, "path", values, ErrInvalidPath)
	}
}
