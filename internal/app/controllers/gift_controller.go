package controllers

import (
	"fmt"

	"github.com/brystmar/greeting-cards/internal/domain/models"
	"github.com/brystmar/greeting-cards/internal/domain/services"
	"github.com/brystmar/greeting-cards/internal/domain/services/container"
	"github.com/brystmar/greeting-cards/internal/error/code"
	"github.com/brystmar/greeting-cards/internal/error/response"
	"github.com/brystmar/greeting-cards/internal/pkg/logger"
	"github.com/brystmar/greeting-cards/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// InterfaceGiftController defines the gift controller interface
type InterfaceGiftController interface {
	GetGifts()
	GetGift()
	CreateGift()
	UpdateGift()
	DeleteGift()
}

// GiftController handles gift-related requests
type GiftController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewGiftController creates a new gift controller
func NewGiftController(ctx *gin.Context, container *container.ServiceContainer) *GiftController {
	return &GiftController{
		Ctx:       ctx,
		Container: container,
	}
}

// GiftRequest represents a gift create/update payload
type GiftRequest struct {
	ID                *uint           `json:"id"`
	EventID           *uint           `json:"event_id" example:"1"`
	HouseholdID       *uint           `json:"household_id" example:"1"`
	Description       *string         `json:"description" example:"Hand-knit blanket"`
	Type              *string         `json:"type" example:"Homemade"`
	Origin            *string         `json:"origin"`
	Date              *string         `json:"date" example:"2024-06-15"`
	ShouldACardBeSent *utils.FlexBool `json:"should_a_card_be_sent" swaggertype:"boolean"`
	Notes             *string         `json:"notes"`
}

// HandleGiftFunc returns a gin handler for gift requests
func HandleGiftFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewGiftController(ctx, container)

		switch method {
		case "getGifts":
			controller.GetGifts()
		case "getGift":
			controller.GetGift()
		case "createGift":
			controller.CreateGift()
		case "updateGift":
			controller.UpdateGift()
		case "deleteGift":
			controller.DeleteGift()
		default:
			response.Fail(ctx, code.ErrBind, "invalid method")
		}
	}
}

// giftService fetches the gift service from the container
func (c *GiftController) giftService() services.InterfaceGiftService {
	return c.Container.GetService("gift").(services.InterfaceGiftService)
}

// 1. GetGifts returns all gifts
// @Summary List all gifts
// @Tags Gift
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /v1/all_gifts [get]
func (c *GiftController) GetGifts() {
	gifts, err := c.giftService().GetAllGifts()
	if err != nil {
		logger.Error("Failed to retrieve gifts: %v", err)
		response.ServerError(c.Ctx, "error retrieving gifts: "+err.Error())
		return
	}

	output := make([]gin.H, 0, len(gifts))
	for i := range gifts {
		output = append(output, gifts[i].ToDict())
	}

	response.OK(c.Ctx, output)
}

// 2. GetGift returns a single gift by id
// @Summary Get gift
// @Tags Gift
// @Produce json
// @Param id query int true "gift id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/gift [get]
func (c *GiftController) GetGift() {
	id, ok := parseIDQuery(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "must provide an integer gift id")
		return
	}

	gift, err := c.giftService().GetGiftByID(id)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c.Ctx, code.ErrGiftNotFound, fmt.Sprintf("no gift found with id=%d", id))
			return
		}
		response.ServerError(c.Ctx, err.Error())
		return
	}

	response.OK(c.Ctx, gift.ToDict())
}

// 3. CreateGift adds a new gift record
// @Summary Create gift
// @Description Creates a new gift; should_a_card_be_sent defaults to true
// @Tags Gift
// @Accept json
// @Produce json
// @Param gift body GiftRequest true "gift fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/gift [post]
func (c *GiftController) CreateGift() {
	var req GiftRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error())
		return
	}

	gift := &models.Gift{
		EventID:     req.EventID,
		HouseholdID: req.HouseholdID,
		// Some friends & family ask you not to send a thank-you card;
		// most don't, so default to sending one
		ShouldACardBeSent: true,
	}
	if req.Description != nil {
		gift.Description = *req.Description
	}
	if req.Type != nil {
		gift.Type = *req.Type
	}
	if req.Origin != nil {
		gift.Origin = *req.Origin
	}
	if req.ShouldACardBeSent != nil {
		gift.ShouldACardBeSent = req.ShouldACardBeSent.Bool()
	}
	if req.Notes != nil {
		gift.Notes = *req.Notes
	}
	if req.Date != nil && *req.Date != "" {
		d, err := models.ParseDate(*req.Date)
		if err != nil {
			response.ParamError(c.Ctx, "date must be formatted YYYY-MM-DD")
			return
		}
		gift.Date = d
	}

	if err := c.giftService().CreateGift(gift); err != nil {
		logger.Error("Failed to create gift: %v", err)
		response.ServerError(c.Ctx, "unable to create a new gift record: "+err.Error())
		return
	}

	logger.Info("New gift record created: id=%d", gift.ID)
	response.Created(c.Ctx, gift.ID)
}

// 4. UpdateGift updates an existing gift by id
// @Summary Update gift
// @Tags Gift
// @Accept json
// @Produce json
// @Param gift body GiftRequest true "gift fields, including id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/gift [put]
func (c *GiftController) UpdateGift() {
	var req GiftRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error())
		return
	}

	if req.ID == nil {
		response.ParamError(c.Ctx, "must provide a gift id")
		return
	}

	updates := make(map[string]interface{})
	if req.EventID != nil {
		updates["event_id"] = *req.EventID
	}
	if req.HouseholdID != nil {
		updates["household_id"] = *req.HouseholdID
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Origin != nil {
		updates["origin"] = *req.Origin
	}
	if req.ShouldACardBeSent != nil {
		updates["should_a_card_be_sent"] = req.ShouldACardBeSent.Bool()
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Date != nil {
		if *req.Date == "" {
			updates["date"] = nil
		} else {
			d, err := models.ParseDate(*req.Date)
			if err != nil {
				response.ParamError(c.Ctx, "date must be formatted YYYY-MM-DD")
				return
			}
			updates["date"] = *d
		}
	}

	gift, err := c.giftService().UpdateGift(*req.ID, updates)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c.Ctx, code.ErrGiftNotFound, fmt.Sprintf("no gift found with id=%d", *req.ID))
			return
		}
		logger.Error("Failed to update gift id=%d: %v", *req.ID, err)
		response.ServerError(c.Ctx, "unable to update gift record: "+err.Error())
		return
	}

	response.OK(c.Ctx, gin.H{"id": gift.ID})
}

// 5. DeleteGift deletes a gift by id
// @Summary Delete gift
// @Tags Gift
// @Produce json
// @Param id query int true "gift id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/gift [delete]
func (c *GiftController) DeleteGift() {
	id, ok := parseIDQuery(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "must provide an integer gift id")
		return
	}

	if err := c.giftService().DeleteGift(id); err != nil {
		if isNotFound(err) {
			response.NotFound(c.Ctx, code.ErrGiftNotFound, fmt.Sprintf("no gift found with id=%d", id))
			return
		}
		logger.Error("Failed to delete gift id=%d: %v", id, err)
		response.ServerError(c.Ctx, "unable to delete gift record: "+err.Error())
		return
	}

	response.Message(c.Ctx, fmt.Sprintf("successfully deleted gift id=%d", id))
}
