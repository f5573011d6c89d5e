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

// InterfaceAddressController defines the address controller interface
type InterfaceAddressController interface {
	GetAddresses()
	GetAddress()
	CreateAddress()
	UpdateAddress()
	DeleteAddress()
}

// AddressController handles address-related requests
type AddressController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAddressController creates a new address controller
func NewAddressController(ctx *gin.Context, container *container.ServiceContainer) *AddressController {
	return &AddressController{
		Ctx:       ctx,
		Container: container,
	}
}

// AddressRequest represents an address create/update payload
type AddressRequest struct {
	ID                       *uint           `json:"id"`
	HouseholdID              *uint           `json:"household_id" example:"1"`
	Line1                    *string         `json:"line_1" example:"123 Main St"`
	Line2                    *string         `json:"line_2" example:"Apt 4"`
	City                     *string         `json:"city" example:"Springfield"`
	State                    *string         `json:"state" example:"IL"`
	Zip                      *string         `json:"zip" example:"62704"`
	Country                  *string         `json:"country" example:"United States"`
	FullAddress              *string         `json:"full_address"`
	IsCurrent                *utils.FlexBool `json:"is_current" swaggertype:"boolean"`
	IsLikelyToChange         *utils.FlexBool `json:"is_likely_to_change" swaggertype:"boolean"`
	MailTheCardToThisAddress *utils.FlexBool `json:"mail_the_card_to_this_address" swaggertype:"boolean"`
	CreatedDate              *string         `json:"created_date"`
	LastModified             *string         `json:"last_modified"`
	Notes                    *string         `json:"notes"`
}

// HandleAddressFunc returns a gin handler for address requests
func HandleAddressFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAddressController(ctx, container)

		switch method {
		case "getAddresses":
			controller.GetAddresses()
		case "getAddress":
			controller.GetAddress()
		case "createAddress":
			controller.CreateAddress()
		case "updateAddress":
			controller.UpdateAddress()
		case "deleteAddress":
			controller.DeleteAddress()
		default:
			response.Fail(ctx, code.ErrBind, "invalid method")
		}
	}
}

// addressService fetches the address service from the container
func (c *AddressController) addressService() services.InterfaceAddressService {
	return c.Container.GetService("address").(services.InterfaceAddressService)
}

// 1. GetAddresses returns all addresses
// @Summary List all addresses
// @Tags Address
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /v1/all_addresses [get]
func (c *AddressController) GetAddresses() {
	addresses, err := c.addressService().GetAllAddresses()
	if err != nil {
		logger.Error("Failed to retrieve addresses: %v", err)
		response.ServerError(c.Ctx, "error retrieving addresses: "+err.Error())
		return
	}

	output := make([]gin.H, 0, len(addresses))
	for i := range addresses {
		output = append(output, addresses[i].ToDict())
	}

	response.OK(c.Ctx, output)
}

// 2. GetAddress returns a single address by id
// @Summary Get address
// @Tags Address
// @Produce json
// @Param id query int true "address id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/address [get]
func (c *AddressController) GetAddress() {
	id, ok := parseIDQuery(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "must provide an integer address id")
		return
	}

	address, err := c.addressService().GetAddressByID(id)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c.Ctx, code.ErrAddressNotFound, fmt.Sprintf("no address found with id=%d", id))
			return
		}
		response.ServerError(c.Ctx, err.Error())
		return
	}

	response.OK(c.Ctx, address.ToDict())
}

// 3. CreateAddress adds a new address record. When line_2 is provided and
// the caller didn't say otherwise, the address is flagged likely-to-change:
// apartment-dwellers move more often.
// @Summary Create address
// @Tags Address
// @Accept json
// @Produce json
// @Param address body AddressRequest true "address fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/address [post]
func (c *AddressController) CreateAddress() {
	var req AddressRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error())
		return
	}

	if req.HouseholdID == nil {
		response.ParamError(c.Ctx, "must provide a household_id for this address")
		return
	}

	address := &models.Address{
		HouseholdID: *req.HouseholdID,
		Country:     models.DefaultCountry,
		// Defaults for the flag fields
		IsCurrent:                true,
		MailTheCardToThisAddress: true,
	}
	applyAddressFields(address, &req)

	// Apartment override: line_2 implies the household is more likely to
	// move, unless the caller explicitly said otherwise
	if address.Line2 != "" && req.IsLikelyToChange == nil {
		address.IsLikelyToChange = true
	}

	if err := c.addressService().CreateAddress(address); err != nil {
		logger.Error("Failed to create address: %v", err)
		response.ServerError(c.Ctx, "unable to create a new address record: "+err.Error())
		return
	}

	logger.Info("New address record created: id=%d household_id=%d", address.ID, address.HouseholdID)
	response.Created(c.Ctx, address.ID)
}

// 4. UpdateAddress updates an existing address by id
// @Summary Update address
// @Tags Address
// @Accept json
// @Produce json
// @Param address body AddressRequest true "address fields, including id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/address [put]
func (c *AddressController) UpdateAddress() {
	var req AddressRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, "invalid request parameters: "+err.Error())
		return
	}

	if req.ID == nil {
		response.ParamError(c.Ctx, "must provide an address id")
		return
	}

	updates := addressUpdates(&req)

	address, err := c.addressService().UpdateAddress(*req.ID, updates)
	if err != nil {
		if isNotFound(err) {
			response.NotFound(c.Ctx, code.ErrAddressNotFound, fmt.Sprintf("no address found with id=%d", *req.ID))
			return
		}
		logger.Error("Failed to update address id=%d: %v", *req.ID, err)
		response.ServerError(c.Ctx, "unable to update address record: "+err.Error())
		return
	}

	response.OK(c.Ctx, gin.H{"id": address.ID})
}

// 5. DeleteAddress deletes an address by id
// @Summary Delete address
// @Tags Address
// @Produce json
// @Param id query int true "address id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/address [delete]
func (c *AddressController) DeleteAddress() {
	id, ok := parseIDQuery(c.Ctx)
	if !ok {
		response.ParamError(c.Ctx, "must provide an integer address id")
		return
	}

	if err := c.addressService().DeleteAddress(id); err != nil {
		if isNotFound(err) {
			response.NotFound(c.Ctx, code.ErrAddressNotFound, fmt.Sprintf("no address found with id=%d", id))
			return
		}
		logger.Error("Failed to delete address id=%d: %v", id, err)
		response.ServerError(c.Ctx, "unable to delete address record: "+err.Error())
		return
	}

	response.Message(c.Ctx, fmt.Sprintf("successfully deleted address id=%d", id))
}

// applyAddressFields copies the optional request fields onto a new model
func applyAddressFields(a *models.Address, req *AddressRequest) {
	if req.Line1 != nil {
		a.Line1 = *req.Line1
	}
	if req.Line2 != nil {
		a.Line2 = *req.Line2
	}
	if req.City != nil {
		a.City = *req.City
	}
	if req.State != nil {
		a.State = *req.State
	}
	if req.Zip != nil {
		a.Zip = *req.Zip
	}
	if req.Country != nil {
		a.Country = *req.Country
	}
	if req.FullAddress != nil {
		a.FullAddress = *req.FullAddress
	}
	if req.IsCurrent != nil {
		a.IsCurrent = req.IsCurrent.Bool()
	}
	if req.IsLikelyToChange != nil {
		a.IsLikelyToChange = req.IsLikelyToChange.Bool()
	}
	if req.MailTheCardToThisAddress != nil {
		a.MailTheCardToThisAddress = req.MailTheCardToThisAddress.Bool()
	}
	if req.Notes != nil {
		a.Notes = *req.Notes
	}
	if req.CreatedDate != nil {
		if t, err := models.ParseTimestamp(*req.CreatedDate); err == nil {
			a.CreatedDate = t
		} else {
			logger.Warning("Ignoring unparseable created_date %q: %v", *req.CreatedDate, err)
		}
	}
	if req.LastModified != nil {
		if t, err := models.ParseTimestamp(*req.LastModified); err == nil {
			a.LastModified = t
		} else {
			logger.Warning("Ignoring unparseable last_modified %q: %v", *req.LastModified, err)
		}
	}
}

// addressUpdates builds a column update map from the fields present in
// the payload
func addressUpdates(req *AddressRequest) map[string]interface{} {
	updates := make(map[string]interface{})

	if req.HouseholdID != nil {
		updates["household_id"] = *req.HouseholdID
	}
	if req.Line1 != nil {
		updates["line_1"] = *req.Line1
	}
	if req.Line2 != nil {
		updates["line_2"] = *req.Line2
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.Zip != nil {
		updates["zip"] = *req.Zip
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.FullAddress != nil {
		updates["full_address"] = *req.FullAddress
	}
	if req.IsCurrent != nil {
		updates["is_current"] = req.IsCurrent.Bool()
	}
	if req.IsLikelyToChange != nil {
		updates["is_likely_to_change"] = req.IsLikelyToChange.Bool()
	}
	if req.MailTheCardToThisAddress != nil {
		updates["mail_the_card_to_this_address"] = req.MailTheCardToThisAddress.Bool()
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	return updates
}
