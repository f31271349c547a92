package mockapi

import (
	"github.com/go-playground/validator/v10"
)

// requestValidator adapts validator/v10 to echo's Validator interface.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{validate: validator.New()}
}

func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
