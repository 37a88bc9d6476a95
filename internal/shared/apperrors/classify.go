package apperrors

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Classify maps a raised error onto the closed kind set. Errors the
// services raise as *AppError pass through untouched; ozzo validation
// errors become field-level validation failures; everything else is
// matched against the known service-layer vocabulary, and what remains
// is treated as unexpected.
func Classify(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		return NewValidation("validation failed", FieldViolations(vErrs))
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "not found"):
		return NewNotFound(err.Error())
	case strings.Contains(msg, "already exists"):
		return NewConflict(err.Error())
	case strings.Contains(msg, "cannot modify other user"):
		return NewAuthorization(err.Error())
	case strings.Contains(msg, "cannot modify past events"):
		return NewBusinessLogic(err.Error())
	case strings.Contains(msg, "invalid music style"),
		strings.Contains(msg, "invalid event id format"),
		strings.Contains(msg, "event date must be"):
		e := NewValidation(err.Error(), nil)
		return e
	case strings.Contains(msg, "invalid credentials"),
		strings.Contains(msg, "missing authorization"),
		strings.Contains(msg, "invalid token"):
		return NewAuthentication(err.Error())
	case strings.Contains(msg, "database"),
		strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "transaction"):
		return NewDatabase(err)
	default:
		return NewInternal(err)
	}
}

// FieldViolations flattens ozzo validation errors into an ordered list of
// field-level violations. Nested errors keep dotted field paths.
func FieldViolations(errs validation.Errors) []FieldViolation {
	var out []FieldViolation
	collectViolations("", errs, &out)

	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

func collectViolations(prefix string, errs validation.Errors, out *[]FieldViolation) {
	for field, err := range errs {
		path := field
		if prefix != "" {
			path = prefix + "." + field
		}

		var nested validation.Errors
		if errors.As(err, &nested) {
			collectViolations(path, nested, out)
			continue
		}

		*out = append(*out, FieldViolation{Field: path, Message: err.Error()})
	}
}
