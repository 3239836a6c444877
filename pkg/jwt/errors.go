package jwt

import "errors"

var (
	ErrMissingSigningKey = errors.New("jwt signing key is required")
	ErrWeakSigningKey    = errors.New("jwt signing key must be at least 32 bytes")
	ErrMissingToken      = errors.New("missing token")
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token has expired")
	ErrMissingSubject    = errors.New("token subject is required")
)
