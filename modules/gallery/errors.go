package gallery

import (
	"errors"

	"github.com/dmitrymomot/portfolio/handler"
)

var ErrNotFound = errors.New("gallery item not found")

// errorResponse lets the error handler render ErrNotFound as 404.
func errorResponse(err error) handler.Response {
	if errors.Is(err, ErrNotFound) {
		err = errors.Join(handler.ErrNotFound, err)
	}
	return handler.Error(err)
}
