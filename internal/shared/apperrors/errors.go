package apperrors

import (
	"fmt"
	"net/http"
)

// Kind is the closed set of failure classifications. Every error that
// crosses the service boundary is mapped to exactly one of these.
type Kind string

const (
	KindValidation     Kind = "VALIDATION_ERROR"
	KindAuthentication Kind = "AUTHENTICATION_ERROR"
	KindAuthorization  Kind = "AUTHORIZATION_ERROR"
	KindBusinessLogic  Kind = "BUSINESS_LOGIC_ERROR"
	KindDatabase       Kind = "DATABASE_ERROR"
	KindExternal       Kind = "EXTERNAL_SERVICE_ERROR"
	KindInternal       Kind = "INTERNAL_ERROR"
	KindNotFound       Kind = "NOT_FOUND"
	KindConflict       Kind = "CONFLICT"
)

// FieldViolation is a single field-level validation failure.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the uniform error shape emitted to transports. Message and
// Code are externally safe; Err keeps the internal cause for logging.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Status  int
	Details interface{}
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusFor maps a kind to its transport status class. Unclassified kinds
// fall through to 500.
func StatusFor(kind Kind) int {
	switch kind {
	case KindValidation, KindBusinessLogic:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func newError(kind Kind, code, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Status:  StatusFor(kind),
		Err:     err,
	}
}

func NewValidation(message string, violations []FieldViolation) *AppError {
	e := newError(KindValidation, "VALIDATION_ERROR", message, nil)
	if len(violations) > 0 {
		e.Details = violations
	}
	return e
}

func NewAuthentication(message string) *AppError {
	return newError(KindAuthentication, "AUTHENTICATION_ERROR", message, nil)
}

func NewAuthorization(message string) *AppError {
	return newError(KindAuthorization, "AUTHORIZATION_ERROR", message, nil)
}

func NewBusinessLogic(message string) *AppError {
	return newError(KindBusinessLogic, "BUSINESS_LOGIC_ERROR", message, nil)
}

func NewNotFound(message string) *AppError {
	return newError(KindNotFound, "NOT_FOUND", message, nil)
}

func NewConflict(message string) *AppError {
	return newError(KindConflict, "CONFLICT", message, nil)
}

// NewDatabase hides the internal cause behind a generic external message.
// The cause stays on Err for the error log.
func NewDatabase(err error) *AppError {
	return newError(KindDatabase, "DATABASE_ERROR", "database error", err)
}

func NewInternal(err error) *AppError {
	return newError(KindInternal, "INTERNAL_ERROR", "internal server error", err)
}
