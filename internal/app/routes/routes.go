package routes

import (
	_ "github.com/brystmar/greeting-cards/docs"
	"github.com/brystmar/greeting-cards/internal/app/controllers"
	"github.com/brystmar/greeting-cards/internal/app/middleware"
	"github.com/brystmar/greeting-cards/internal/domain/services/container"
	"github.com/brystmar/greeting-cards/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// Locally-run single-user app: allow CORS for all origins
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())

	// Ensure UTF-8 JSON responses
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})

	serviceContainer := container.NewServiceContainer(db, cfg)

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer, cfg)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
	cfg *config.Config,
) {
	api := r.Group("/api")
	api.Use(middleware.IPRateLimiter(cfg.RateLimitRate, cfg.RateLimitBurst))

	// Health check routes
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping"))

	v1 := api.Group("/v1")

	// Household routes
	v1.GET("/household", controllers.HandleHouseholdFunc(container, "getHousehold"))
	v1.POST("/household", controllers.HandleHouseholdFunc(container, "createHousehold"))
	v1.PUT("/household", controllers.HandleHouseholdFunc(container, "updateHousehold"))
	v1.DELETE("/household", controllers.HandleHouseholdFunc(container, "deleteHousehold"))
	v1.GET("/all_households", controllers.HandleHouseholdFunc(container, "getHouseholds"))

	// Address routes
	v1.GET("/address", controllers.HandleAddressFunc(container, "getAddress"))
	v1.POST("/address", controllers.HandleAddressFunc(container, "createAddress"))
	v1.PUT("/address", controllers.HandleAddressFunc(container, "updateAddress"))
	v1.DELETE("/address", controllers.HandleAddressFunc(container, "deleteAddress"))
	v1.GET("/all_addresses", controllers.HandleAddressFunc(container, "getAddresses"))

	// Event routes
	v1.GET("/event", controllers.HandleEventFunc(container, "getEvent"))
	v1.POST("/event", controllers.HandleEventFunc(container, "createEvent"))
	v1.PUT("/event", controllers.HandleEventFunc(container, "updateEvent"))
	v1.DELETE("/event", controllers.HandleEventFunc(container, "deleteEvent"))
	v1.GET("/all_events", controllers.HandleEventFunc(container, "getEvents"))

	// Gift routes
	v1.GET("/gift", controllers.HandleGiftFunc(container, "getGift"))
	v1.POST("/gift", controllers.HandleGiftFunc(container, "createGift"))
	v1.PUT("/gift", controllers.HandleGiftFunc(container, "updateGift"))
	v1.DELETE("/gift", controllers.HandleGiftFunc(container, "deleteGift"))
	v1.GET("/all_gifts", controllers.HandleGiftFunc(container, "getGifts"))

	// Card routes
	v1.GET("/card", controllers.HandleCardFunc(container, "getCard"))
	v1.POST("/card", controllers.HandleCardFunc(container, "createCard"))
	v1.PUT("/card", controllers.HandleCardFunc(container, "updateCard"))
	v1.DELETE("/card", controllers.HandleCardFunc(container, "deleteCard"))
	v1.GET("/all_cards", controllers.HandleCardFunc(container, "getCards"))

	// Picklist routes
	v1.GET("/picklist_values", controllers.HandlePicklistFunc(container, "getPicklistValues"))
}
