package httpapi

import (
	"fmt"
	"net/http"
)

const (
	CodeValidation  = "validation"
	CodeNotFound    = "not_found"
	CodeUnavailable = "unavailable"
	CodeInternal    = "internal"
)

// Error is rendered as {"ok":false,"error":{"code","message"}}.
type Error struct {
	Code    string
	Message string
	Status  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func statusForCode(code string) int {
	switch code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func newError(code, message string) *Error {
	return &Error{Code: code, Message: message, Status: statusForCode(code)}
}

func validationJSONError(err error) *Error {
	return newError(CodeValidation, "invalid json: "+err.Error())
}

func notFound(format string, args ...any) *Error {
	return newError(CodeNotFound, fmt.Sprintf(format, args...))
}
