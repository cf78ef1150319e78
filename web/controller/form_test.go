package controller

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func newFormValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func TestFieldErrorsLoginForm(t *testing.T) {
	v := newFormValidator()

	err := v.Struct(LoginForm{Username: "ab", Password: "short"})
	fe := fieldErrors(err)
	assert.Equal(t, map[string]string{
		"username": "Username must be at least 3 characters long",
		"password": "Password must be at least 6 characters long",
	}, fe)

	err = v.Struct(LoginForm{})
	fe = fieldErrors(err)
	assert.Equal(t, map[string]string{
		"username": "Username is required",
		"password": "Password is required",
	}, fe)

	assert.NoError(t, v.Struct(LoginForm{Username: "abc", Password: "secret"}))
}

func TestFieldErrorsJokeForm(t *testing.T) {
	v := newFormValidator()

	err := v.Struct(JokeForm{Name: "ab", Content: "too short"})
	fe := fieldErrors(err)
	assert.Equal(t, map[string]string{
		"name":    "Name must be at least 3 characters long",
		"content": "Content must be at least 10 characters long",
	}, fe)

	assert.NoError(t, v.Struct(JokeForm{Name: "abc", Content: "exactly ten"}))
}

func TestFieldErrorsNonValidatorError(t *testing.T) {
	assert.Nil(t, fieldErrors(assert.AnError))
}
