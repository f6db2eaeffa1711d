package errors

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes surfaced to clients in the response body. The SPA switches on
// these, so they are part of the wire contract.
const (
	CodeBadLogin            = "BAD_LOGIN"
	CodeBadPassword         = "BAD_PASSWORD"
	CodeMissingRefreshToken = "MISSING_REFRESH_TOKEN"
	CodeRefreshNotAllowed   = "REFRESH_NOT_ALLOWED"
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodeTokenExpired        = "TOKEN_EXPIRED"
	CodeTokenSignature      = "INVALID_TOKEN_SIGNATURE"
	CodeMissingToken        = "MISSING_TOKEN"
	CodeForbiddenOperation  = "FORBIDDEN_OPERATION"
	CodeResourceNotFound    = "RESOURCE_NOT_FOUND"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeLoginInUse          = "LOGIN_IN_USE"
	CodeInvalidLogLevel     = "INVALID_LOG_LEVEL"
	CodeInternalError       = "INTERNAL_ERROR"
)

// ApiError is the single error type crossing the HTTP boundary.
// Name and Code identify the error kind to the client; StatusCode is
// mirrored into the HTTP status and never serialized in the body.
type ApiError struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *ApiError) Error() string {
	return e.Message
}

// NewApiError reports an internal consistency fault (500).
func NewApiError(code, message string) *ApiError {
	return &ApiError{
		Name:       "ApiError",
		Code:       code,
		Message:    message,
		StatusCode: fiber.StatusInternalServerError,
	}
}

// NewUnauthorizedAccessError reports an invalid credential or session (401).
// All credential failures share this shape; only the code differs.
func NewUnauthorizedAccessError(code, message string) *ApiError {
	return &ApiError{
		Name:       "UnauthorizedAccessError",
		Code:       code,
		Message:    message,
		StatusCode: fiber.StatusUnauthorized,
	}
}

// NewForbiddenOperationError reports an authenticated user lacking the
// required role (403).
func NewForbiddenOperationError() *ApiError {
	return &ApiError{
		Name:       "ForbiddenOperationError",
		Code:       CodeForbiddenOperation,
		Message:    "Operation is not allowed",
		StatusCode: fiber.StatusForbidden,
	}
}

// NewNotFoundResourceError reports an unmapped route or missing resource (404).
func NewNotFoundResourceError(resource string) *ApiError {
	return &ApiError{
		Name:       "NotFoundResourceError",
		Code:       CodeResourceNotFound,
		Message:    fmt.Sprintf("Resource '%s' not found", resource),
		StatusCode: fiber.StatusNotFound,
	}
}

// NewBadRequestError reports a malformed or unacceptable request body (400).
func NewBadRequestError(code, message string) *ApiError {
	return &ApiError{
		Name:       "BadRequestError",
		Code:       code,
		Message:    message,
		StatusCode: fiber.StatusBadRequest,
	}
}

// Bearer token verification failures. Sentinels so callers can compare with
// errors.Is; the authentication middleware surfaces each as a distinct kind.
var (
	ErrJwtTokenExpired = &ApiError{
		Name:       "JwtTokenExpiredError",
		Code:       CodeTokenExpired,
		Message:    "Jwt token has expired",
		StatusCode: fiber.StatusUnauthorized,
	}

	ErrJwtTokenSignature = &ApiError{
		Name:       "JwtTokenSignatureError",
		Code:       CodeTokenSignature,
		Message:    "Jwt token signature is invalid",
		StatusCode: fiber.StatusUnauthorized,
	}

	ErrNoJwtToken = &ApiError{
		Name:       "NoJwtTokenError",
		Code:       CodeMissingToken,
		Message:    "No Jwt token found in request",
		StatusCode: fiber.StatusUnauthorized,
	}
)
