package project

import (
	"errors"

	"github.com/dmitrymomot/portfolio/handler"
)

var ErrNotFound = errors.New("project not found")

func errorResponse(err error) handler.Response {
	if errors.Is(err, ErrNotFound) {
		err = errors.Join(handler.ErrNotFound, err)
	}
	return handler.Error(err)
}
