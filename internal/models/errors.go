package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorKind classifies an AppError. Every kind maps to exactly one HTTP status.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindForbidden
	KindConflict
)

// Error codes surfaced to clients in ErrorResponse.Code.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeEmailTaken         = "EMAIL_TAKEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNoToken            = "NO_TOKEN"
	CodeTokenInvalid       = "TOKEN_INVALID"
	CodeNotFound           = "NOT_FOUND"
	CodeForbidden          = "FORBIDDEN"
	CodeAlreadyLiked       = "ALREADY_LIKED"
	CodeNotLiked           = "NOT_LIKED"
	CodeInternal           = "INTERNAL_ERROR"
)

var kindStatus = map[ErrorKind]int{
	KindValidation:   fiber.StatusBadRequest,
	KindUnauthorized: fiber.StatusUnauthorized,
	KindNotFound:     fiber.StatusNotFound,
	KindForbidden:    fiber.StatusForbidden,
	KindConflict:     fiber.StatusBadRequest,
	KindInternal:     fiber.StatusInternalServerError,
}

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code,omitempty"`
	Errors []FieldError `json:"errors,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Fields  []FieldError
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

// Status returns the HTTP status code for the error kind.
func (e *AppError) Status() int {
	if status, ok := kindStatus[e.Kind]; ok {
		return status
	}
	return fiber.StatusInternalServerError
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string, fields ...FieldError) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Code:    CodeValidation,
		Message: message,
		Fields:  fields,
	}
}

func NewUnauthorizedError(code, message string) *AppError {
	return &AppError{
		Kind:    KindUnauthorized,
		Code:    code,
		Message: message,
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Kind:    KindForbidden,
		Code:    CodeForbidden,
		Message: message,
	}
}

func NewConflictError(code, message string) *AppError {
	return &AppError{
		Kind:    KindConflict,
		Code:    code,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

var (
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = NewConflictError(CodeEmailTaken, "Email is already taken")
	// ErrInvalidCredentials is returned for both unknown email and wrong password.
	ErrInvalidCredentials = &AppError{Kind: KindValidation, Code: CodeInvalidCredentials, Message: "Invalid credentials"}
	// ErrNoToken is returned when a protected route is called without a token.
	ErrNoToken = NewUnauthorizedError(CodeNoToken, "No token, authorization denied")
	// ErrTokenInvalid is the single outcome of any token verification failure.
	ErrTokenInvalid = NewUnauthorizedError(CodeTokenInvalid, "Token is not valid")
	// ErrAlreadyLiked is returned when liking a post the user already liked.
	ErrAlreadyLiked = NewConflictError(CodeAlreadyLiked, "Post already liked")
	// ErrNotLiked is returned when unliking a post the user has not liked.
	ErrNotLiked = NewConflictError(CodeNotLiked, "Post has not yet been liked")
)

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// StatusFor translates any error into the HTTP status the API answers with.
func StatusFor(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status()
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}

// RespondWithError writes the standardized error response for err.
// Internal causes are never exposed to the client.
func RespondWithError(c *fiber.Ctx, err error) error {
	status := StatusFor(err)

	var response ErrorResponse
	var appErr *AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		response = ErrorResponse{
			Error:  appErr.Message,
			Code:   appErr.Code,
			Errors: appErr.Fields,
		}
	case errors.As(err, &fiberErr):
		response = ErrorResponse{Error: fiberErr.Message}
	default:
		response = ErrorResponse{Error: "Internal server error", Code: CodeInternal}
	}

	return c.Status(status).JSON(response)
}
