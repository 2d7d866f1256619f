package apperror

import "errors"

type Code string

const (
	CodeValidation   Code = "validation"
	CodeDuplicate    Code = "duplicate"
	CodeNotFound     Code = "not_found"
	CodeUnauthorized Code = "unauthorized"
	CodeInternal     Code = "internal"
)

// Error is a structured application error carrying a code, the offending
// field (for validation and duplicate errors) and a human-readable message.
type Error struct {
	Code    Code
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// InvalidField reports a malformed or missing field.
func InvalidField(field, message string) *Error {
	return &Error{Code: CodeValidation, Field: field, Message: message}
}

// DuplicateField reports a uniqueness conflict on a field.
func DuplicateField(field, message string) *Error {
	return &Error{Code: CodeDuplicate, Field: field, Message: message}
}

// NotFound reports a missing record.
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// GetCode extracts the error code, defaulting to CodeInternal
// for unrecognized errors.
func GetCode(err error) Code {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}

// GetMessage extracts the structured message, or the plain error text.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	return err.Error()
}
