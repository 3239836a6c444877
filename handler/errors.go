package handler

import (
	"errors"
	"net/http"
)

var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error with a fixed status code. Key is both the error code
// in the JSON envelope and the suffix of its "errors.<key>" translation.
type HTTPError struct {
	Code    int
	Key     string
	Message string
}

func (e HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Code)
}

var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Key: "bad_request", Message: "The request could not be processed."}
	ErrUnauthorized         = HTTPError{Code: http.StatusUnauthorized, Key: "unauthorized", Message: "Authentication required."}
	ErrInvalidCredentials   = HTTPError{Code: http.StatusUnauthorized, Key: "invalid_credentials", Message: "Invalid email or password."}
	ErrForbidden            = HTTPError{Code: http.StatusForbidden, Key: "forbidden", Message: "You are not allowed to do this."}
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Key: "not_found", Message: "The requested resource was not found."}
	ErrConflict             = HTTPError{Code: http.StatusConflict, Key: "conflict", Message: "The resource already exists."}
	ErrRequestTooLarge      = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "file_too_large", Message: "The uploaded file is too large."}
	ErrInvalidImage         = HTTPError{Code: http.StatusBadRequest, Key: "invalid_image", Message: "The uploaded file must be an image."}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type", Message: "Unsupported content type."}
	ErrTooManyRequests      = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests", Message: "Too many requests. Please try again later."}
	ErrInternal             = HTTPError{Code: http.StatusInternalServerError, Key: "internal", Message: "An error occurred processing your request."}
)
