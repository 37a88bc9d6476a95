package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope shapes are uniform across the API: successes carry data (plus
// pagination for lists), failures carry a single error object.

type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error ErrorBody `json:"error"`
}

type listEnvelope struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Paginated(c *gin.Context, statusCode int, data interface{}, pagination Pagination) {
	c.JSON(statusCode, listEnvelope{
		Data:       data,
		Pagination: pagination,
	})
}

func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, errorEnvelope{
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, errorEnvelope{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
