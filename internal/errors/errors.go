package errors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workflowhq/workflow-api/internal/storage"
)

// Error codes
const (
	// Authentication errors
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"

	// Validation errors
	ErrCodeInvalidInput = "INVALID_INPUT"

	// Resource errors
	ErrCodeNotFound = "NOT_FOUND"
	ErrCodeConflict = "CONFLICT"

	// Service errors
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeStorageUnavailable = "STORAGE_UNAVAILABLE"
)

// APIError represents a standardized API error response
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Helper functions for common error responses

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(ErrCodeUnauthorized, message))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, NewAPIError(ErrCodeNotFound, message))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeInvalidInput, message))
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Resource conflict"
	}
	RespondWithError(c, http.StatusConflict, NewAPIError(ErrCodeConflict, message))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}

// StorageUnavailable sends a 503 response
func StorageUnavailable(c *gin.Context) {
	RespondWithError(c, http.StatusServiceUnavailable,
		NewAPIError(ErrCodeStorageUnavailable, "Storage backend is unavailable"))
}

// FromStorage maps a storage-layer error onto the appropriate HTTP response:
// not-found to 404, validation failures to 400, unreachable backend to 503,
// anything else to 500.
func FromStorage(c *gin.Context, err error, notFoundMessage string) {
	var ve *storage.ValidationError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		NotFound(c, notFoundMessage)
	case errors.As(err, &ve):
		RespondWithError(c, http.StatusBadRequest, &APIError{
			Code:    ErrCodeInvalidInput,
			Message: "Invalid request",
			Details: gin.H{"field": ve.Field, "reason": ve.Reason},
		})
	case errors.Is(err, storage.ErrUnavailable):
		StorageUnavailable(c)
	default:
		InternalError(c, "")
	}
}
