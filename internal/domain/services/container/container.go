package container

import (
	"sync"

	"github.com/brystmar/greeting-cards/internal/domain/services"
	"github.com/brystmar/greeting-cards/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ServiceContainer manages dependency injection for all services
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	householdService services.InterfaceHouseholdService
	addressService   services.InterfaceAddressService
	eventService     services.InterfaceEventService
	giftService      services.InterfaceGiftService
	cardService      services.InterfaceCardService
	picklistService  services.InterfacePicklistService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}

	if cfg == nil {
		panic("config is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices constructs every service
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.householdService = services.NewHouseholdService(c.db, c.config)
	c.addressService = services.NewAddressService(c.db, c.config)
	c.eventService = services.NewEventService(c.db, c.config)
	c.giftService = services.NewGiftService(c.db, c.config)
	c.cardService = services.NewCardService(c.db, c.config)
	c.picklistService = services.NewPicklistService(c.db, c.config)
}

// GetService returns a service by name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "household":
		return c.householdService
	case "address":
		return c.addressService
	case "event":
		return c.eventService
	case "gift":
		return c.giftService
	case "card":
		return c.cardService
	case "picklist":
		return c.picklistService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	return c.db
}

// GetConfig returns the application configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	return c.config
}
