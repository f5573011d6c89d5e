package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brystmar/greeting-cards/internal/error/code"
)

// The client renders records and lists directly, so success responses carry
// the raw payload. Error responses carry a single human-readable message.

// OK renders a 200 with the given payload
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created renders a 201 with the generated record id
func Created(c *gin.Context, id uint) {
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Message renders a 200 with a confirmation message
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Fail renders the mapped HTTP status for an error code. When detail is
// non-empty it replaces the code's default message.
func Fail(c *gin.Context, errorCode int, detail string) {
	message := code.GetMessage(errorCode)
	if detail != "" {
		message = detail
	}
	c.JSON(code.GetStatus(errorCode), gin.H{"message": message})
}

// ParamError renders a 400 for missing or malformed request parameters
func ParamError(c *gin.Context, message string) {
	Fail(c, code.ErrValidation, message)
}

// NotFound renders a 404
func NotFound(c *gin.Context, errorCode int, message string) {
	Fail(c, errorCode, message)
}

// ServerError renders a 500 with the stringified failure detail
func ServerError(c *gin.Context, message string) {
	Fail(c, code.ErrDatabase, message)
}
