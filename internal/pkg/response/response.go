package response

import (
	"errors"
	"net/http"

	"blogapi/internal/pkg/apperr"
	"blogapi/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Success writes the standard success envelope {statusCode, data, message?}.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"statusCode": statusCode,
		"data":       data,
	})
}

// SuccessMessage writes a success envelope carrying only a message.
func SuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"statusCode": statusCode,
		"message":    message,
	})
}

// SuccessWithMessage writes both data and message.
func SuccessWithMessage(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, gin.H{
		"statusCode": statusCode,
		"data":       data,
		"message":    message,
	})
}

// Error writes the standard error envelope {statusCode, error, message}.
func Error(c *gin.Context, statusCode int, label string, message string) {
	c.JSON(statusCode, gin.H{
		"statusCode": statusCode,
		"error":      label,
		"message":    message,
	})
}

// FromError maps a service error to the envelope. Typed apperr errors keep
// their kind's status and label; anything else is logged server-side and
// surfaced as a generic 500 so internals never leak to the client.
func FromError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		Error(c, appErr.Kind.HTTPStatus(), appErr.Kind.Label(), appErr.Message)
		return
	}

	logger.Log.WithFields(map[string]interface{}{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).WithError(err).Error("unhandled error")

	Error(c, http.StatusInternalServerError, "Internal Server Error", "Something went wrong!")
}
