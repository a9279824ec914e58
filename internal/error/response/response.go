package response

import (
	"github.com/gin-gonic/gin"

	"github.com/Admiral-Simo/globalvaccinator/internal/error/code"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Fail aborts the request with the status and message of errorCode.
func Fail(c *gin.Context, errorCode int, details string) {
	FailWithMessage(c, errorCode, code.GetMessage(errorCode), details)
}

// FailWithMessage aborts the request with a custom message.
func FailWithMessage(c *gin.Context, errorCode int, message string, details string) {
	c.AbortWithStatusJSON(code.GetStatus(errorCode), ErrorResponse{
		Code:    errorCode,
		Message: message,
		Details: details,
	})
}
