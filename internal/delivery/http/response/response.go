package response

import (
	"github.com/gin-gonic/gin"
)

const statusSuccess = "success"

// Response is the envelope of successful mutating calls
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse carries either a message string or a list of field errors.
type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Status:  statusSuccess,
		Message: message,
		Data:    data,
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, detail interface{}) {
	c.AbortWithStatusJSON(code, ErrorResponse{Detail: detail})
}
