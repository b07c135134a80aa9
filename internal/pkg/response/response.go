package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope shared by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, Response{
		Error: &ErrorBody{Code: code, Message: message},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, Response{
		Error: &ErrorBody{Code: code, Message: message, Details: details},
	})
}

// CustomError accepts a string, an error or a field map as the message.
// Field maps go to details under a generic message.
func CustomError(c *gin.Context, statusCode int, code string, message any) {
	switch m := message.(type) {
	case string:
		Error(c, statusCode, code, m)
	case error:
		if statusCode >= 500 {
			_ = c.Error(m)
			Error(c, statusCode, code, "Internal server error")
			return
		}
		Error(c, statusCode, code, m.Error())
	case map[string]string:
		ErrorWithDetails(c, statusCode, code, "Validation failed", m)
	default:
		Error(c, statusCode, code, fmt.Sprint(m))
	}
}

// Abort writes an error and stops the handler chain.
func Abort(c *gin.Context, statusCode int, code string, message string) {
	Error(c, statusCode, code, message)
	c.Abort()
}
