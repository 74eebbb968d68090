package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
	Slug    string `json:"slug,omitempty" validate:"omitempty,slug"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&contactRequest{
		Name:    "Neha",
		Email:   "neha@example.com",
		Message: "Where is my order?",
		Slug:    "linen-shirt-2",
	}))

	err := v.Validate(&contactRequest{Email: "not-an-email", Message: "short", Slug: "Linen Shirt"})

	var validationErr *Error
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []FieldError{
		{Field: "name", Rule: "required"},
		{Field: "email", Rule: "email"},
		{Field: "message", Rule: "min", Param: "10"},
		{Field: "slug", Rule: "slug"},
	}, validationErr.Fields)
	assert.Equal(t, "name failed required; email failed email; message failed min=10; slug failed slug", err.Error())
}
