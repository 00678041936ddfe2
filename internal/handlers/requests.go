package handlers

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// htmlEmailRegex is the valid e-mail address rule from the HTML living
// standard, the one browsers apply to <input type="email">. It accepts
// dotless domains such as user@localhost.
var htmlEmailRegex = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator with the htmlemail tag registered.
func NewValidator() *CustomValidator {
	v := validator.New()
	if err := v.RegisterValidation("htmlemail", func(fl validator.FieldLevel) bool {
		return htmlEmailRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// LoginRequest is the sign-in form. The rules mirror the browser's own
// constraints on the inputs: required fields and the type=email format.
type LoginRequest struct {
	Email    string `form:"email" validate:"required,htmlemail"`
	Password string `form:"password" validate:"required"`
}

// VisibilityRequest carries the password typed so far when the eye icon is clicked.
type VisibilityRequest struct {
	Password string `form:"password"`
}
