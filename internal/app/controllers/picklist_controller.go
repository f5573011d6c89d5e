package controllers

import (
	"github.com/brystmar/greeting-cards/internal/domain/services"
	"github.com/brystmar/greeting-cards/internal/domain/services/container"
	"github.com/brystmar/greeting-cards/internal/error/code"
	"github.com/brystmar/greeting-cards/internal/error/response"

	"github.com/gin-gonic/gin"
)

// PicklistController serves the read-only picklist values for UI dropdowns
type PicklistController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPicklistController creates a new picklist controller
func NewPicklistController(ctx *gin.Context, container *container.ServiceContainer) *PicklistController {
	return &PicklistController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandlePicklistFunc returns a gin handler for picklist requests
func HandlePicklistFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPicklistController(ctx, container)

		switch method {
		case "getPicklistValues":
			controller.GetPicklistValues()
		default:
			response.Fail(ctx, code.ErrBind, "invalid method")
		}
	}
}

// GetPicklistValues returns the default picklist values
// @Summary Get picklist values
// @Description Returns the singleton picklist configuration, each field split into a list of values. A missing row is a configuration error.
// @Tags Picklists
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /v1/picklist_values [get]
func (c *PicklistController) GetPicklistValues() {
	picklistService := c.Container.GetService("picklist").(services.InterfacePicklistService)

	picklists, err := picklistService.GetDefaultPicklists()
	if err != nil {
		// Missing singleton row and store failure both surface as 404 here:
		// either way the configuration this endpoint serves is unavailable
		response.NotFound(c.Ctx, code.ErrPicklistNotFound, "no picklist values found: "+err.Error())
		return
	}

	response.OK(c.Ctx, picklists.ToDict())
}
