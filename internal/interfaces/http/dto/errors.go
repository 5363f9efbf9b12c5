package dto

import (
	"net/http"
	"strings"
)

// Transport-level error codes
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL"
)

// errorCodeHTTPStatus maps business error codes to HTTP status codes.
// Codes not listed fall through to the prefix rules in GetHTTPStatus.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:     http.StatusBadRequest,
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,
	ErrCodeNotFound:       http.StatusNotFound,
	ErrCodeInternal:       http.StatusInternalServerError,
	"ALREADY_EXISTS":      http.StatusConflict,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_DISABLED":    http.StatusForbidden,
	"INVALID_INPUT":       http.StatusBadRequest,
	"WEAK_PASSWORD":       http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status for a business error code.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusUnprocessableEntity
}
