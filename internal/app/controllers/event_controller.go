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

// InterfaceEventController defines the event controller interface
type InterfaceEventController interface {
	GetEvents()
	GetEvent()
	CreateEvent()
	UpdateEvent()
	DeleteEvent()
}

// EventController handles event-related requests
type EventController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEventController creates a new event controller
func NewEventController(ctx *gin.Context, container *container.ServiceContainer) *EventController {
	return &EventController{
		Ctx:       ctx,
		Container: container,
	}
}

// EventRequest represents an event create/update payload
type EventRequest struct {
	ID         *uint           `json:"id"`
	Name       *string         `json:"name" example:"Wedding 2024"`
	Date       *string         `json:"date" example:"2024-06-15"`
	Year       *int            `json:"year" example:"2024"`
	IsArchived *utils.FlexBool `json:"is_archived" swaggertype:"boolean"`
	Notes      *string         `json:"notes"`
}

// HandleEventFunc returns a gin handler for event requests
func HandleEventFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEventController(ctx, container)

		switch method {
		case "getEvents":
			controller.GetEvents()
		case "getEvent":
			controller.GetEvent()
		case "createEvent":
			controller.CreateEvent()
		case "updateEvent":
			controller.UpdateEvent()
		case "deleteEvent":
			controller.DeleteEvent()
		default:
			response.Fail(ctx, code.ErrBind, "invalid method")
		}
	}
}

// eventService fetches the event service from the container
func (c *EventController) eventService() services.InterfaceEventService {
	return c.Container.GetService("event").(services.InterfaceEventService)
}

// 1. GetEvents returns all events
// @Summary List all events
// @Tags Event
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /v1/all_events [get]
func (c *EventController) GetEvents() {
	events, err := c.eventService().GetAllEvents()
	if err != nil {
		logger.Error("Failed to retrieve events: %v", err)
		response.ServerError(c.Ctx, "error retrieving events: "+err.Error())
		return
	}

	output := make([]gin.H, 0, len(events))
	for i := range events {
		output = append(output, events[i].ToDict())
	}

	response.OK(c.Ctx, output)
}

// 2. GetEvent returns a single event by id
// @Summary Get event
// @Tags Event
// @Produce json
// @Param id query int true "event id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/event [get]
func (c *EventController) GetEvent() {
	id, ok := parseIDQuery(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "must provide an integer event id")
		return
	}

	event, err := c.eventService().GetEventByID(id)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c.Ctx, code.ErrEventNotFound, fmt.Sprintf("no event found with id=%d", id))
			return
		}
		response.ServerError(c.Ctx, err.Error())
		return
	}

	response.OK(c.Ctx, event.ToDict())
}

// 3. CreateEvent adds a new event record
// @Summary Create event
// @Description Creates a new event; year defaults to the current calendar year
// @Tags Event
// @Accept json
// @Produce json
// @Param event body EventRequest true "event fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/event [post]
func (c *EventController) CreateEvent() {
	var req EventRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error())
		return
	}

	event := &models.Event{}
	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Year != nil {
		event.Year = *req.Year
	}
	if req.IsArchived != nil {
		event.IsArchived = req.IsArchived.Bool()
	}
	if req.Notes != nil {
		event.Notes = *req.Notes
	}
	if req.Date != nil && *req.Date != "" {
		d, err := models.ParseDate(*req.Date)
		if err != nil {
			response.ParamError(c.Ctx, "date must be formatted YYYY-MM-DD")
			return
		}
		event.Date = d
	}

	if err := c.eventService().CreateEvent(event); err != nil {
		logger.Error("Failed to create event: %v", err)
		response.ServerError(c.Ctx, "unable to create a new event record: "+err.Error())
		return
	}

	logger.Info("New event record created: id=%d name=%s", event.ID, event.Name)
	response.Created(c.Ctx, event.ID)
}

// 4. UpdateEvent updates an existing event by id
// @Summary Update event
// @Tags Event
// @Accept json
// @Produce json
// @Param event body EventRequest true "event fields, including id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/event [put]
func (c *EventController) UpdateEvent() {
	var req EventRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error())
		return
	}

	if req.ID == nil {
		response.ParamError(c.Ctx, "must provide an event id")
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.IsArchived != nil {
		updates["is_archived"] = req.IsArchived.Bool()
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

	event, err := c.eventService().UpdateEvent(*req.ID, updates)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c.Ctx, code.ErrEventNotFound, fmt.Sprintf("no event found with id=%d", *req.ID))
			return
		}
		logger.Error("Failed to update event id=%d: %v", *req.ID, err)
		response.ServerError(c.Ctx, "unable to update event record: "+err.Error())
		return
	}

	response.OK(c.Ctx, gin.H{"id": event.ID})
}

// 5. DeleteEvent deletes an event by id
// @Summary Delete event
// @Tags Event
// @Produce json
// @Param id query int true "event id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/event [delete]
func (c *EventController) DeleteEvent() {
	id, ok := parseIDQuery(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "must provide an integer event id")
		return
	}

	if err := c.eventService().DeleteEvent(id); err != nil {
		if isNotFound(err) {
			response.NotFound(c.Ctx, code.ErrEventNotFound, fmt.Sprintf("no event found with id=%d", id))
			return
		}
		logger.Error("Failed to delete event id=%d: %v", id, err)
		response.ServerError(c.Ctx, "unable to delete event record: "+err.Error())
		return
	}

	response.Message(c.Ctx, fmt.Sprintf("successfully deleted event id=%d", id))
}
