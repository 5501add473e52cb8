package validators

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	phonePattern    = regexp.MustCompile(`^\+?1?\d{9,15}$`)
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
)

const MinPasswordLength = 8

func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

func IsUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

// PasswordProblem returns a user-facing reason the password is rejected, or "".
func PasswordProblem(password, username, email string) string {
	if len(password) < MinPasswordLength {
		return "This password is too short. It must contain at least 8 characters."
	}
	numeric := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			numeric = false
			break
		}
	}
	if numeric {
		return "This password is entirely numeric."
	}
	lower := strings.ToLower(password)
	if lower == strings.ToLower(username) || lower == strings.ToLower(email) {
		return "The password is too similar to your personal information."
	}
	return ""
}

// Register installs the custom tags on gin's validator engine.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	// field errors are reported under their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return fl.Field().String() == "" || IsPhone(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return IsUsername(fl.Field().String())
	})
}
