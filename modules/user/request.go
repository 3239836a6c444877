package user

import (
	"github.com/dmitrymomot/portfolio/pkg/sanitizer"
	"github.com/dmitrymomot/portfolio/pkg/validator"
)

const maxNameLength = 100

var normalizeName = sanitizer.Compose(
	sanitizer.RemoveControlChars,
	sanitizer.NormalizeWhitespace,
	sanitizer.SanitizeInput,
)

type RegisterRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Name     string `json:"name" form:"name"`
}

// Validate normalizes the email and name and reports every failing field.
func (r RegisterRequest) Validate(strength validator.PasswordStrengthConfig) (RegisterRequest, error) {
	r.Email = sanitizer.NormalizeEmail(r.Email)
	r.Name = normalizeName(r.Name)

	if err := validator.Apply(
		validator.ValidEmail("email", r.Email),
		validator.StrongPassword("password", r.Password, strength),
		validator.NotCommonPassword("password", r.Password),
		validator.RequiredString("name", r.Name),
		validator.MaxLenString("name", r.Name, maxNameLength),
	); err != nil {
		return RegisterRequest{}, err
	}
	return r, nil
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (r LoginRequest) Validate() (LoginRequest, error) {
	r.Email = sanitizer.NormalizeEmail(r.Email)

	if err := validator.Apply(
		validator.RequiredString("email", r.Email),
		validator.RequiredString("password", r.Password),
	); err != nil {
		return LoginRequest{}, err
	}
	return r, nil
}
