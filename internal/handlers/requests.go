package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// TabRequest is the path of the tab fragment endpoint.
type TabRequest struct {
	Tab string `param:"tab" validate:"required,oneof=login register"`
}

// CredentialsForm is the body of both auth forms. Fields are not validated
// here; the screen owns validation so both surfaces behave the same.
type CredentialsForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}
