package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует маршруты v1. Все, кроме проверки здоровья, требует API-ключ.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	zones := protected.Group("/zones")
	{
		zones.POST("", h.createZone)
		zones.DELETE("/:id", h.deactivateZone)
	}
	protected.GET("/locations/:location_id/zones", h.listZones)

	protected.POST("/location/validate", h.validateLocation)
	protected.POST("/location/check", h.checkLocation)
	protected.POST("/wifi/verify", h.verifyWiFi)
	protected.POST("/clock/verify", h.verifyClock)
	protected.DELETE("/rate-limits/:employee_id", h.clearRateLimit)

	breaks := protected.Group("/breaks")
	{
		breaks.POST("", h.startBreak)
		breaks.POST("/:id/end", h.endBreak)
	}
	protected.GET("/time-entries/:id/breaks", h.listBreaks)

	tracking := protected.Group("/tracking")
	{
		tracking.POST("", h.startTracking)
		tracking.GET("/:employee_id", h.getTracking)
		tracking.DELETE("/:employee_id", h.stopTracking)
	}
}
