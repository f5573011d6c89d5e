package controllers

import (
	"fmt"

	"github.com/brystmar/greeting-cards/internal/domain/models"
	"github.com/brystmar/greeting-cards/internal/domain/services"
	"github.com/brystmar/greeting-cards/internal/domain/services/container"
	"github.com/brystmar/greeting-cards/internal/error/code"
	"github.com/brystmar/greeting-cards/internal/error/response"
	"github.com/brystmar/greeting-cards/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// InterfaceCardController defines the card controller interface
type InterfaceCardController interface {
	GetCards()
	GetCard()
	CreateCard()
	UpdateCard()
	DeleteCard()
}

// CardController handles card-related requests
type CardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCardController creates a new card controller
func NewCardController(ctx *gin.Context, container *container.ServiceContainer) *CardController {
	return &CardController{
		Ctx:       ctx,
		Container: container,
	}
}

// CardRequest represents a card create/update payload
type CardRequest struct {
	ID          *uint   `json:"id"`
	Type        *string `json:"type" example:"Thank You"`
	Status      *string `json:"status" example:"New"`
	GiftID      *uint   `json:"gift_id"`
	EventID     *uint   `json:"event_id"`
	HouseholdID *uint   `json:"household_id"`
	AddressID   *uint   `json:"address_id"`
	DateSent    *string `json:"date_sent" example:"2024-12-20"`
	Notes       *string `json:"notes"`
}

// HandleCardFunc returns a gin handler for card requests
func HandleCardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCardController(ctx, container)

		switch method {
		case "getCards":
			controller.GetCards()
		case "getCard":
			controller.GetCard()
		case "createCard":
			controller.CreateCard()
		case "updateCard":
			controller.UpdateCard()
		case "deleteCard":
			controller.DeleteCard()
		default:
			response.Fail(ctx, code.ErrBind, "invalid method")
		}
	}
}

// cardService fetches the card service from the container
func (c *CardController) cardService() services.InterfaceCardService {
	return c.Container.GetService("card").(services.InterfaceCardService)
}

// 1. GetCards returns all cards
// @Summary List all cards
// @Tags Card
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /v1/all_cards [get]
func (c *CardController) GetCards() {
	cards, err := c.cardService().GetAllCards()
	if err != nil {
		logger.Error("Failed to retrieve cards: %v", err)
		response.ServerError(c.Ctx, "error retrieving cards: "+err.Error())
		return
	}

	output := make([]gin.H, 0, len(cards))
	for i := range cards {
		output = append(output, cards[i].ToDict())
	}

	response.OK(c.Ctx, output)
}

// 2. GetCard returns a single card by id
// @Summary Get card
// @Tags Card
// @Produce json
// @Param id query int true "card id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/card [get]
func (c *CardController) GetCard() {
	id, ok := parseIDQuery(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "must provide an integer card id")
		return
	}

	card, err := c.cardService().GetCardByID(id)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c.Ctx, code.ErrCardNotFound, fmt.Sprintf("no card found with id=%d", id))
			return
		}
		response.ServerError(c.Ctx, err.Error())
		return
	}

	response.OK(c.Ctx, card.ToDict())
}

// 3. CreateCard adds a new card record
// @Summary Create card
// @Description Creates a new card; status defaults to New. A card created directly as Sent without date_sent is stamped with today's date.
// @Tags Card
// @Accept json
// @Produce json
// @Param card body CardRequest true "card fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/card [post]
func (c *CardController) CreateCard() {
	var req CardRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error())
		return
	}

	card := &models.Card{
		Status:      models.CardStatusNew,
		GiftID:      req.GiftID,
		EventID:     req.EventID,
		HouseholdID: req.HouseholdID,
		AddressID:   req.AddressID,
	}
	if req.Status != nil {
		status, ok := models.NormalizeStatus(*req.Status)
		if !ok {
			response.Fail(c.Ctx, code.ErrCardInvalidStatus, "")
			return
		}
		card.Status = status
	}
	if req.Type != nil {
		card.Type = *req.Type
	}
	if req.Notes != nil {
		card.Notes = *req.Notes
	}
	if req.DateSent != nil && *req.DateSent != "" {
		d, err := models.ParseDate(*req.DateSent)
		if err != nil {
			response.ParamError(c.Ctx, "date_sent must be formatted YYYY-MM-DD")
			return
		}
		card.DateSent = d
	}

	if err := c.cardService().CreateCard(card); err != nil {
		logger.Error("Failed to create card: %v", err)
		response.ServerError(c.Ctx, "unable to create a new card record: "+err.Error())
		return
	}

	logger.Info("New card record created: id=%d status=%s", card.ID, card.Status)
	response.Created(c.Ctx, card.ID)
}

// 4. UpdateCard updates an existing card by id. Moving the status to Sent
// without supplying date_sent stamps date_sent with today's date.
// @Summary Update card
// @Tags Card
// @Accept json
// @Produce json
// @Param card body CardRequest true "card fields, including id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/card [put]
func (c *CardController) UpdateCard() {
	var req CardRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error())
		return
	}

	if req.ID == nil {
		response.ParamError(c.Ctx, "must provide a card id")
		return
	}

	updates := make(map[string]interface{})
	if req.Status != nil {
		status, ok := models.NormalizeStatus(*req.Status)
		if !ok {
			response.Fail(c.Ctx, code.ErrCardInvalidStatus, "")
			return
		}
		updates["status"] = status
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.GiftID != nil {
		updates["gift_id"] = *req.GiftID
	}
	if req.EventID != nil {
		updates["event_id"] = *req.EventID
	}
	if req.HouseholdID != nil {
		updates["household_id"] = *req.HouseholdID
	}
	if req.AddressID != nil {
		updates["address_id"] = *req.AddressID
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.DateSent != nil {
		if *req.DateSent == "" {
			updates["date_sent"] = nil
		} else {
			d, err := models.ParseDate(*req.DateSent)
			if err != nil {
				response.ParamError(c.Ctx, "date_sent must be formatted YYYY-MM-DD")
				return
			}
			updates["date_sent"] = *d
		}
	}

	card, err := c.cardService().UpdateCard(*req.ID, updates)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c.Ctx, code.ErrCardNotFound, fmt.Sprintf("no card found with id=%d", *req.ID))
			return
		}
		logger.Error("Failed to update card id=%d: %v", *req.ID, err)
		response.ServerError(c.Ctx, "unable to update card record: "+err.Error())
		return
	}

	response.OK(c.Ctx, gin.H{"id": card.ID})
}

// 5. DeleteCard deletes a card by id
// @Summary Delete card
// @Tags Card
// @Produce json
// @Param id query int true "card id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/card [delete]
func (c *CardController) DeleteCard() {
	id, ok := parseIDQuery(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "must provide an integer card id")
		return
	}

	if err := c.cardService().DeleteCard(id); err != nil {
		if isNotFound(err) {
			response.NotFound(c.Ctx, code.ErrCardNotFound, fmt.Sprintf("no card found with id=%d", id))
			return
		}
		logger.Error("Failed to delete card id=%d: %v", id, err)
		response.ServerError(c.Ctx, "unable to delete card record: "+err.Error())
		return
	}

	response.Message(c.Ctx, fmt.Sprintf("successfully deleted card id=%d", id))
}
