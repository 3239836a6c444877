package binder

import (
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"reflect"
	"strings"
)

// DefaultMaxMemory is the multipart memory budget; larger parts spill to disk.
const DefaultMaxMemory = 10 << 20

var fileHeaderType = reflect.TypeFor[*multipart.FileHeader]()

// Form binds application/x-www-form-urlencoded and multipart/form-data bodies.
// `form` tags receive field values, `file` tags receive *multipart.FileHeader
// or []*multipart.FileHeader.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		ct := r.Header.Get("Content-Type")
		if ct == "" {
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		}

		var (
			values map[string][]string
			files  map[string][]*multipart.FileHeader
		)

		switch mt := mediaType(ct); mt {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.PostForm

		case "multipart/form-data":
			_, params, err := mime.ParseMediaType(ct)
			if err != nil || params["boundary"] == "" {
				return fmt.Errorf("%w: missing boundary in content type", ErrInvalidForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				var maxErr *http.MaxBytesError
				if errors.As(err, &maxErr) {
					return fmt.Errorf("%w: %v", ErrRequestTooLarge, err)
				}
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.MultipartForm.Value
			files = r.MultipartForm.File

		default:
			return fmt.Errorf("%w: got %s, expected a form", ErrUnsupportedMediaType, mt)
		}

		if err := bindValues(v, "form", values, ErrInvalidForm); err != nil {
			return err
		}
		return bindFiles(v, files)
	}
}

func bindFiles(v any, files map[string][]*multipart.FileHeader) error {
	if len(files) == 0 {
		return nil
	}

	rv, err := structValue(v, ErrInvalidForm)
	if err != nil {
		return err
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		name := tagName(rt.Field(i), "file")
		if name == "" || !field.CanSet() {
			continue
		}

		headers := files[name]
		if len(headers) == 0 {
			continue
		}
		for _, fh := range headers {
			fh.Filename = cleanFilename(fh.Filename)
		}

		switch field.Type() {
		case fileHeaderType:
			field.Set(reflect.ValueOf(headers[0]))
		case reflect.SliceOf(fileHeaderType):
			field.Set(reflect.ValueOf(headers))
		default:
			return fmt.Errorf("%w: field %s: unsupported file field type %s", ErrInvalidForm, name, field.Type())
		}
	}

	return nil
}

// cleanFilename drops directory components and NUL bytes from a client filename.
func cleanFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.ReplaceAll(filepath.Base(name), "\x00", "")
	if name == "." || name == ".." || name == "/" || name == "" {
		return "unnamed"
	}
	return name
}
