package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody represents a structured error in a response.
type ErrorBody struct {
	Code   ErrCode           `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Every response body is a flat JSON object carrying a "message" field,
// plus endpoint-specific fields (token, courseId, courses) on success and
// an "error" object on failure.

// Success sends a successful JSON response. Extra endpoint-specific fields
// are merged alongside the message.
func Success(c *gin.Context, statusCode int, message string, extra gin.H) {
	body := gin.H{"message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Fail sends an error response with an error code and no field-level details.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, gin.H{
		"message": GetMessage(code),
		"error":   &ErrorBody{Code: code},
	})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, gin.H{
		"message": GetMessage(code),
		"error":   &ErrorBody{Code: code, Fields: fields},
	})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"message": GetMessage(code),
		"error":   &ErrorBody{Code: code},
	})
}
