package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"moi/pkg/logger"
	"moi/pkg/places"
	"moi/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// APIError represents a custom API error structure
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("API Error (Code: %d, Message: %s): %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("API Error (Code: %d, Message: %s)", e.Code, e.Message)
}

// Unwrap supports error wrapping
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new API error
func NewAPIError(code int, message string, err error) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewBadRequestError creates a 400 Bad Request error
func NewBadRequestError(message string, err error) *APIError {
	return NewAPIError(http.StatusBadRequest, message, err)
}

// HandleError provides unified error handling.
// Provider failures keep the provider's status and body; everything else is
// mapped to a gateway error payload.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	log := logger.FromContext(c.Request.Context())

	if pe, ok := places.AsProviderError(err); ok {
		response.WriteProviderError(c, pe.HTTPStatus(), pe.Body, pe)
		return
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Err != nil {
			log.Warn("API error occurred",
				zap.Int("code", apiErr.Code),
				zap.String("message", apiErr.Message),
				zap.Error(apiErr.Err))
		}
		response.WriteErrorResponse(c, apiErr.Code, apiErr.Message, apiErr.Err)
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		response.WriteErrorResponse(c, http.StatusBadRequest, "Invalid parameter", err)
		return
	}

	log.Error("Unexpected error occurred", zap.Error(err))
	response.WriteErrorResponse(c, http.StatusInternalServerError, "Internal server error", nil)
}
