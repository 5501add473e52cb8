package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Lukas18007/dyschool/internal/httperr"
	"github.com/Lukas18007/dyschool/internal/middleware"
)

var errMalformedBody = httperr.BusinessError{
	Kind:    httperr.KindValidation,
	Code:    "invalid_request",
	Message: "Malformed request body.",
}

// bindJSON binds the body and answers 400 with per-field messages on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.Respond(c, bindError(err))
		return false
	}
	return true
}

func bindError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errMalformedBody
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return httperr.InvalidFields(fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
	case "oneof":
		return "Select a valid choice."
	case "phone":
		return "Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed."
	case "username":
		return "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	default:
		return "Enter a valid value."
	}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.Respond(c, httperr.NotFound("not_found", "Not found."))
		return 0, false
	}
	return uint(id), true
}

func currentUserID(c *gin.Context) uint {
	id, _ := middleware.UserID(c)
	return id
}

// --------------------------------------------------
// Optional query parameters
// --------------------------------------------------

type queryParser struct {
	c      *gin.Context
	fields map[string]string
}

func newQueryParser(c *gin.Context) *queryParser {
	return &queryParser{c: c, fields: map[string]string{}}
}

func (p *queryParser) optUint(name string) *uint {
	raw := strings.TrimSpace(p.c.Query(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		p.fields[name] = "Select a valid choice."
		return nil
	}
	out := uint(v)
	return &out
}

func (p *queryParser) optInt(name string) *int {
	raw := strings.TrimSpace(p.c.Query(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fields[name] = "Enter a whole number."
		return nil
	}
	return &v
}

func (p *queryParser) optFloat(name string) *float64 {
	raw := strings.TrimSpace(p.c.Query(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.fields[name] = "Enter a number."
		return nil
	}
	return &v
}

func (p *queryParser) err() error {
	if len(p.fields) == 0 {
		return nil
	}
	return httperr.InvalidFields(p.fields)
}
