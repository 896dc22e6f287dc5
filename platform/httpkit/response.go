package httpkit

import (
	"net/http"

	"beautycrm_backend/platform/apperr"
	"beautycrm_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// JSON sends a JSON response with the given status code.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// Error sends an error response with the given status code and message.
func Error(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, ErrorResponse{Error: message, Details: details})
}

// OK sends a 200 OK response with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// HandleError maps domain errors to HTTP responses.
// Typed *apperr.Error values anywhere in the chain use their Kind; anything
// else is reported as an opaque 500. Causes are logged, never returned.
// Returns true if an error was handled, false otherwise.
func HandleError(c *gin.Context, err error, log *logger.Logger) bool {
	if err == nil {
		return false
	}

	domainErr, ok := apperr.As(err)
	if !ok {
		domainErr = apperr.Internal("internal error", err)
	}

	status := domainErr.HTTPStatus()
	if status >= http.StatusInternalServerError && log != nil {
		log.WithContext(c.Request.Context()).HTTPError(c.Request.Method, c.Request.URL.Path, status, err, c.ClientIP())
	}

	c.JSON(status, ErrorResponse{
		Error:   domainErr.Message,
		Code:    domainErr.Kind.String(),
		Details: domainErr.Details,
	})
	return true
}
