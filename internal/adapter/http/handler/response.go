package handler

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents the error body returned by every endpoint
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

func respondErrorWithDetails(c *gin.Context, status int, message, details string) {
	c.JSON(status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
