package controller

import "github.com/go-playground/validator/v10"

type requestValidator struct {
	v *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{v: validator.New()}
}

func (rv *requestValidator) Validate(i interface{}) error {
	return rv.v.Struct(i)
}
