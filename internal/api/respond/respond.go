package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the standard API response wrapper used across handlers.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// JSON writes a success response using the common envelope.
func JSON(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Code: status, Message: message, Data: data})
}

// Error writes an error response and stops handler processing.
func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Code: status, Message: message})
}

// NotFound is a shorthand for the most common error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}
