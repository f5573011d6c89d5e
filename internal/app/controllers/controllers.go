// Package controllers translates between the HTTP wire format and the
// service layer. One controller group per resource; no controller calls
// another controller.
package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorResponse documents the error payload shape for swagger
type ErrorResponse struct {
	Message string `json:"message"`
}

// parseIDQuery reads the integer `id` query parameter. The second return is
// false when the parameter is absent or not integer-convertible.
func parseIDQuery(c *gin.Context) (uint, bool) {
	raw := c.Query("id")
	if raw == "" {
		return 0, false
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, false
	}
	return uint(id), true
}

// isNotFound reports whether a service error means the record doesn't exist
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
