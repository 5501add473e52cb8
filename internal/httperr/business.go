package httperr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
)

// BusinessError is an expected failure of a use case. It never mutates state.
type BusinessError struct {
	Kind     Kind
	Code     string
	Message  string
	Fields   map[string]string
	Redirect string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func Conflict(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func NotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func Forbidden(code, message, redirect string) error {
	return BusinessError{Kind: KindForbidden, Code: code, Message: message, Redirect: redirect}
}

func Unauthorized(code, message string) error {
	return BusinessError{Kind: KindUnauthorized, Code: code, Message: message}
}

// Invalid reports a single field error.
func Invalid(field, message string) error {
	return BusinessError{
		Kind:    KindValidation,
		Code:    "validation_error",
		Message: "Please correct the errors below.",
		Fields:  map[string]string{field: message},
	}
}

func InvalidFields(fields map[string]string) error {
	return BusinessError{
		Kind:    KindValidation,
		Code:    "validation_error",
		Message: "Please correct the errors below.",
		Fields:  fields,
	}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

// IsUniqueViolation recognizes duplicate keys from either supported driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
