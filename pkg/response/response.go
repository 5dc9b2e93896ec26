package response

import (
	"net/http"

	"moi/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HTTP response constants
const (
	ContentTypeJSON = "application/json"
)

// ErrorBody is the gateway's own error payload
type ErrorBody struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
	Details string `json:"details,omitempty"`
}

// WriteJSONResponse writes data as JSON with the given status code
func WriteJSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// WriteRawJSON relays an already-encoded JSON document unchanged.
func WriteRawJSON(c *gin.Context, statusCode int, body []byte) {
	c.Data(statusCode, ContentTypeJSON, body)
}

// WriteErrorResponse writes an error response in JSON format
func WriteErrorResponse(c *gin.Context, statusCode int, message string, err error) {
	body := ErrorBody{
		Error:   true,
		Message: message,
		Code:    statusCode,
	}

	if err != nil {
		body.Details = err.Error()
		logger.FromContext(c.Request.Context()).Error("API error",
			zap.String("message", message),
			zap.Error(err),
			zap.Int("status_code", statusCode))
	}

	c.JSON(statusCode, body)
}

// WriteProviderError relays a provider failure: its own body when it sent one,
// otherwise a generated error payload. statusCode is always an error status.
func WriteProviderError(c *gin.Context, statusCode int, body []byte, err error) {
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if len(body) > 0 {
		WriteRawJSON(c, statusCode, body)
		return
	}
	WriteErrorResponse(c, statusCode, http.StatusText(statusCode), err)
}
