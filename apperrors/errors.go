package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error represents an application error with an HTTP status analogue.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error taxonomy. Components return these; controllers map them to responses.

// ValidationFailed marks a missing or malformed required field.
func ValidationFailed(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// DuplicateKey marks a failed unique-key pre-check.
func DuplicateKey(message string) *Error {
	return New(http.StatusConflict, message, nil)
}

// NotFound marks an id that does not resolve.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

// InvalidQuantity marks a cart quantity below 1.
func InvalidQuantity(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// StoreUnavailable marks a durable-store connection failure. Callers may
// retry the whole request; the core does not retry.
func StoreUnavailable(err error) *Error {
	return New(http.StatusServiceUnavailable, "Store unavailable", err)
}

// Is reports whether err is an *Error carrying the given status code.
func Is(err error, code int) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsNotFound reports whether err resolves to a NotFound error.
func IsNotFound(err error) bool {
	return Is(err, http.StatusNotFound)
}

// Respond writes err to the client. Typed errors keep their code and message;
// anything else becomes a generic 500 so store diagnostics never leak.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	zap.L().Error("Unhandled error", zap.Error(err), zap.String("path", c.FullPath()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
