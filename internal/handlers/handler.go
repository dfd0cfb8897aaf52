package handlers

import (
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Kanestar/greener/internal/logger"
	"github.com/Kanestar/greener/internal/service"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	// Live dashboard stream (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	api := router.Group("/api/v1", h.requestIDMiddleware)
	{
		h.registerParkRoutes(api)
		h.registerEventRoutes(api)
		h.registerFeedbackRoutes(api)
		h.registerPredictionRoutes(api)
		h.registerSensorRoutes(api)
	}

	return router
}

func (h *Handler) registerParkRoutes(api *gin.RouterGroup) {
	parks := api.Group("/parks")
	{
		parks.GET("", h.listParks)
		parks.GET("/:id", h.getPark)
		parks.POST("", h.createPark)
		parks.PUT("/:id", h.updatePark)

		// Park-scoped sub-collections
		parks.GET("/:id/events", h.listParkEvents)
		parks.GET("/:id/feedback", h.listParkFeedback)
		parks.GET("/:id/predictions", h.getParkPredictions)
		parks.GET("/:id/sensors", h.getParkSensors)
		parks.POST("/:id/maintenance/analyze", h.analyzePark)
	}
}

func (h *Handler) registerEventRoutes(api *gin.RouterGroup) {
	events := api.Group("/events")
	{
		events.GET("", h.listEvents)
		events.POST("", h.createEvent)
		events.POST("/:id/signup", h.signUpForEvent)
	}
}

func (h *Handler) registerFeedbackRoutes(api *gin.RouterGroup) {
	feedback := api.Group("/feedback")
	{
		feedback.GET("", h.listFeedback)
		feedback.POST("", h.createFeedback)
		feedback.POST("/:id/like", h.likeFeedback)
	}
}

func (h *Handler) registerPredictionRoutes(api *gin.RouterGroup) {
	api.POST("/predict", h.predictUsage)
}

func (h *Handler) registerSensorRoutes(api *gin.RouterGroup) {
	api.POST("/sensors", h.createSensorReading)
}
