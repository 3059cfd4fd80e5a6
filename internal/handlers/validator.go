package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator plugs go-playground struct validation into echo's
// bind-then-validate flow, driving the tags on the dto request types
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the validator installed on the echo instance
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validator.New()}
}

// Validate checks a bound request against its struct tags
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
