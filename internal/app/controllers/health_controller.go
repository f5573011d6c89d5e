package controllers

import (
	"github.com/brystmar/greeting-cards/internal/domain/services/container"
	"github.com/brystmar/greeting-cards/internal/error/code"
	"github.com/brystmar/greeting-cards/internal/error/response"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check requests
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a new health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a gin handler for health requests
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		default:
			response.Fail(ctx, code.ErrBind, "invalid method")
		}
	}
}

// Ping responds to liveness checks
// @Summary Ping
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /ping [get]
func (c *HealthController) Ping() {
	c.Ctx.JSON(200, gin.H{"message": "pong"})
}
