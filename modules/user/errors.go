package user

import (
	"errors"

	"github.com/dmitrymomot/portfolio/handler"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("only an admin can register users")
)

func errorResponse(err error) handler.Response {
	switch {
	case errors.Is(err, ErrNotFound):
		err = errors.Join(handler.ErrNotFound, err)
	case errors.Is(err, ErrEmailTaken):
		err = errors.Join(handler.ErrConflict, err)
	case errors.Is(err, ErrInvalidCredentials):
		err = errors.Join(handler.ErrInvalidCredentials, err)
	case errors.Is(err, ErrForbidden):
		err = errors.Join(handler.ErrForbidden, err)
	}
	return handler.Error(err)
}
