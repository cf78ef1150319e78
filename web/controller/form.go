package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// LoginForm is the combined login/register form. LoginType selects the flow
// and is validated separately so field errors surface first.
type LoginForm struct {
	LoginType  string `form:"loginType"`
	Username   string `form:"username" binding:"required,min=3"`
	Password   string `form:"password" binding:"required,min=6"`
	RedirectTo string `form:"redirectTo"`
}

// JokeForm is the new-joke submission form.
type JokeForm struct {
	Name    string `form:"name" binding:"required,min=3"`
	Content string `form:"content" binding:"required,min=10"`
}

// formMessages maps struct field and failed rule to the message shown next to
// the offending input.
var formMessages = map[string]map[string]string{
	"Username": {
		"required": "Username is required",
		"min":      "Username must be at least 3 characters long",
	},
	"Password": {
		"required": "Password is required",
		"min":      "Password must be at least 6 characters long",
	},
	"Name": {
		"required": "Name is required",
		"min":      "Name must be at least 3 characters long",
	},
	"Content": {
		"required": "Content is required",
		"min":      "Content must be at least 10 characters long",
	},
}

// fieldErrors converts a binding error into a field-keyed error map. A nil
// result means the body itself could not be parsed.
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fe := make(map[string]string, len(verrs))
	for _, v := range verrs {
		field := strings.ToLower(v.Field()[:1]) + v.Field()[1:]
		if msgs, ok := formMessages[v.Field()]; ok {
			if msg, ok := msgs[v.Tag()]; ok {
				fe[field] = msg
				continue
			}
		}
		fe[field] = "Invalid value"
	}
	return fe
}
