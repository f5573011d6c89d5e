package controllers

import (
	"fmt"
	"strings"

	"github.com/brystmar/greeting-cards/internal/domain/models"
	"github.com/brystmar/greeting-cards/internal/domain/services"
	"github.com/brystmar/greeting-cards/internal/domain/services/container"
	"github.com/brystmar/greeting-cards/internal/error/code"
	"github.com/brystmar/greeting-cards/internal/error/response"
	"github.com/brystmar/greeting-cards/internal/pkg/logger"
	"github.com/brystmar/greeting-cards/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// InterfaceHouseholdController defines the household controller interface
type InterfaceHouseholdController interface {
	GetHouseholds()
	GetHousehold()
	CreateHousehold()
	UpdateHousehold()
	DeleteHousehold()
}

// HouseholdController handles household-related requests
type HouseholdController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHouseholdController creates a new household controller
func NewHouseholdController(ctx *gin.Context, container *container.ServiceContainer) *HouseholdController {
	return &HouseholdController{
		Ctx:       ctx,
		Container: container,
	}
}

// HouseholdRequest represents a household create/update payload. Pointer
// fields distinguish "absent" from "explicitly zero", and the boolean-shaped
// fields accept any of the wire representations handled by ConvertToBool.
type HouseholdRequest struct {
	ID                       *uint           `json:"id"`
	Nickname                 *string         `json:"nickname" example:"Smith Family"`
	FirstNames               *string         `json:"first_names" example:"John & Jane"`
	Surname                  *string         `json:"surname" example:"Smith"`
	AddressTo                *string         `json:"address_to" example:"The Smiths"`
	FormalName               *string         `json:"formal_name" example:"Mr. & Mrs. John Smith"`
	KnownFrom                *string         `json:"known_from"`
	Relationship             *string         `json:"relationship" example:"Family friends"`
	RelationshipType         *string         `json:"relationship_type" example:"Friends"`
	FamilySide               *string         `json:"family_side"`
	Kids                     *string         `json:"kids"`
	Pets                     *string         `json:"pets"`
	ShouldReceiveHolidayCard *utils.FlexBool `json:"should_receive_holiday_card" swaggertype:"boolean"`
	IsRelevant               *utils.FlexBool `json:"is_relevant" swaggertype:"boolean"`
	CreatedDate              *string         `json:"created_date"`
	LastModified             *string         `json:"last_modified"`
	Notes                    *string         `json:"notes"`
}

// HandleHouseholdFunc returns a gin handler for household requests
func HandleHouseholdFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHouseholdController(ctx, container)

		switch method {
		case "getHouseholds":
			controller.GetHouseholds()
		case "getHousehold":
			controller.GetHousehold()
		case "createHousehold":
			controller.CreateHousehold()
		case "updateHousehold":
			controller.UpdateHousehold()
		case "deleteHousehold":
			controller.DeleteHousehold()
		default:
			response.Fail(ctx, code.ErrBind, "invalid method")
		}
	}
}

// householdService fetches the household service from the container
func (c *HouseholdController) householdService() services.InterfaceHouseholdService {
	return c.Container.GetService("household").(services.InterfaceHouseholdService)
}

// 1. GetHouseholds returns all households
// @Summary List all households
// @Description Returns every household record, ordered by id ascending
// @Tags Household
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /v1/all_households [get]
func (c *HouseholdController) GetHouseholds() {
	households, err := c.householdService().GetAllHouseholds()
	if err != nil {
		logger.Error("Failed to retrieve households: %v", err)
		response.ServerError(c.Ctx, "error retrieving households: "+err.Error())
		return
	}

	output := make([]gin.H, 0, len(households))
	for i := range households {
		output = append(output, households[i].ToDict())
	}

	response.OK(c.Ctx, output)
}

// 2. GetHousehold returns a single household by id
// @Summary Get household
// @Description Returns one household record by its integer id
// @Tags Household
// @Produce json
// @Param id query int true "household id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/household [get]
func (c *HouseholdController) GetHousehold() {
	id, ok := parseIDQuery(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "must provide an integer household id")
		return
	}

	household, err := c.householdService().GetHouseholdByID(id)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c.Ctx, code.ErrHouseholdNotFound, fmt.Sprintf("no household found with id=%d", id))
			return
		}
		response.ServerError(c.Ctx, err.Error())
		return
	}

	response.OK(c.Ctx, household.ToDict())
}

// 3. CreateHousehold adds a new household record
// @Summary Create household
// @Description Creates a new household; nickname is required and must be unique
// @Tags Household
// @Accept json
// @Produce json
// @Param household body HouseholdRequest true "household fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/household [post]
func (c *HouseholdController) CreateHousehold() {
	var req HouseholdRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error())
		return
	}

	if req.Nickname == nil || strings.TrimSpace(*req.Nickname) == "" {
		response.Fail(c.Ctx, code.ErrHouseholdNicknameRequired, "")
		return
	}

	household := &models.Household{
		Nickname: strings.TrimSpace(*req.Nickname),
		// Are these people still relevant to us?  Default: yes
		IsRelevant: true,
	}
	applyHouseholdFields(household, &req)

	if err := c.householdService().CreateHousehold(household); err != nil {
		logger.Error("Failed to create household: %v", err)
		response.ServerError(c.Ctx, "unable to create a new household record: "+err.Error())
		return
	}

	logger.Info("New household record created: id=%d nickname=%s", household.ID, household.Nickname)
	response.Created(c.Ctx, household.ID)
}

// 4. UpdateHousehold updates an existing household by id
// @Summary Update household
// @Description Replaces every field present in the payload; refreshes last_modified
// @Tags Household
// @Accept json
// @Produce json
// @Param household body HouseholdRequest true "household fields, including id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/household [put]
func (c *HouseholdController) UpdateHousehold() {
	var req HouseholdRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error())
		return
	}

	if req.ID == nil {
		response.ParamError(c.Ctx, "must provide a household id")
		return
	}

	updates := householdUpdates(&req)

	household, err := c.householdService().UpdateHousehold(*req.ID, updates)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c.Ctx, code.ErrHouseholdNotFound, fmt.Sprintf("no household found with id=%d", *req.ID))
			return
		}
		logger.Error("Failed to update household id=%d: %v", *req.ID, err)
		response.ServerError(c.Ctx, "unable to update household record: "+err.Error())
		return
	}

	response.OK(c.Ctx, gin.H{"id": household.ID})
}

// 5. DeleteHousehold deletes a household by id
// @Summary Delete household
// @Description Deletes one household. Addresses are not cascade-deleted unless CASCADE_DELETES is enabled.
// @Tags Household
// @Produce json
// @Param id query int true "household id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/household [delete]
func (c *HouseholdController) DeleteHousehold() {
	id, ok := parseIDQuery(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "must provide an integer household id")
		return
	}

	if err := c.householdService().DeleteHousehold(id); err != nil {
		if isNotFound(err) {
			response.NotFound(c.Ctx, code.ErrHouseholdNotFound, fmt.Sprintf("no household found with id=%d", id))
			return
		}
		logger.Error("Failed to delete household id=%d: %v", id, err)
		response.ServerError(c.Ctx, "unable to delete household record: "+err.Error())
		return
	}

	response.Message(c.Ctx, fmt.Sprintf("successfully deleted household id=%d", id))
}

// applyHouseholdFields copies the optional request fields onto a new model
func applyHouseholdFields(h *models.Household, req *HouseholdRequest) {
	if req.FirstNames != nil {
		h.FirstNames = *req.FirstNames
	}
	if req.Surname != nil {
		h.Surname = *req.Surname
	}
	if req.AddressTo != nil {
		h.AddressTo = *req.AddressTo
	}
	if req.FormalName != nil {
		h.FormalName = *req.FormalName
	}
	if req.KnownFrom != nil {
		h.KnownFrom = *req.KnownFrom
	}
	if req.Relationship != nil {
		h.Relationship = *req.Relationship
	}
	if req.RelationshipType != nil {
		h.RelationshipType = *req.RelationshipType
	}
	if req.FamilySide != nil {
		h.FamilySide = *req.FamilySide
	}
	if req.Kids != nil {
		h.Kids = *req.Kids
	}
	if req.Pets != nil {
		h.Pets = *req.Pets
	}
	if req.ShouldReceiveHolidayCard != nil {
		h.ShouldReceiveHolidayCard = req.ShouldReceiveHolidayCard.Bool()
	}
	if req.IsRelevant != nil {
		h.IsRelevant = req.IsRelevant.Bool()
	}
	if req.Notes != nil {
		h.Notes = *req.Notes
	}
	if req.CreatedDate != nil {
		if t, err := models.ParseTimestamp(*req.CreatedDate); err == nil {
			h.CreatedDate = t
		} else {
			logger.Warning("Ignoring unparseable created_date %q: %v", *req.CreatedDate, err)
		}
	}
	if req.LastModified != nil {
		if t, err := models.ParseTimestamp(*req.LastModified); err == nil {
			h.LastModified = t
		} else {
			logger.Warning("Ignoring unparseable last_modified %q: %v", *req.LastModified, err)
		}
	}
}

// householdUpdates builds a column update map from the fields present in
// the payload
func householdUpdates(req *HouseholdRequest) map[string]interface{} {
	updates := make(map[string]interface{})

	if req.Nickname != nil {
		updates["nickname"] = strings.TrimSpace(*req.Nickname)
	}
	if req.FirstNames != nil {
		updates["first_names"] = *req.FirstNames
	}
	if req.Surname != nil {
		updates["surname"] = *req.Surname
	}
	if req.AddressTo != nil {
		updates["address_to"] = *req.AddressTo
	}
	if req.FormalName != nil {
		updates["formal_name"] = *req.FormalName
	}
	if req.KnownFrom != nil {
		updates["known_from"] = *req.KnownFrom
	}
	if req.Relationship != nil {
		updates["relationship"] = *req.Relationship
	}
	if req.RelationshipType != nil {
		updates["relationship_type"] = *req.RelationshipType
	}
	if req.FamilySide != nil {
		updates["family_side"] = *req.FamilySide
	}
	if req.Kids != nil {
		updates["kids"] = *req.Kids
	}
	if req.Pets != nil {
		updates["pets"] = *req.Pets
	}
	if req.ShouldReceiveHolidayCard != nil {
		updates["should_receive_holiday_card"] = req.ShouldReceiveHolidayCard.Bool()
	}
	if req.IsRelevant != nil {
		updates["is_relevant"] = req.IsRelevant.Bool()
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	return updates
}
