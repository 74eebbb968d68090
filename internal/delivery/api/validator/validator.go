// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	"storefront/internal/errors"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// FieldError is one rejected request field, named by its JSON key.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Error lists every field rejected in a request body.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msg := f.Field + " failed " + f.Rule
		if f.Param != "" {
			msg += "=" + f.Param
		}
		parts = append(parts, msg)
	}

	return strings.Join(parts, "; ")
}

// CustomValidator validates bound request structs.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the API server.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query", "form"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return field.Name
	})
	// The tag is registered once at start-up; an error here is a programming mistake.
	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}

	return &Error{Fields: fields}
}
