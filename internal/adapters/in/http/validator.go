package http

import (
	"github.com/go-playground/validator/v10"
)

// requestValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call ctx.Validate on bound request bodies.
type requestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the echo validator used by the server.
func NewRequestValidator() *requestValidator { //nolint:revive //echo only needs the interface
	return &requestValidator{validate: validator.New()}
}

func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
