package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	secured := api.Group("",
		APIKeyAuthMiddleware(h.cfg, h.logger),
		RequestTimeoutMiddleware(h.cfg.RequestTimeout),
	)

	// Аналитика доступна сотрудникам полиции, администраторам и аналитикам
	analyticsGroup := secured.Group("/analytics", RequireRoles(h.logger, AnalyticsRoles...))
	{
		analyticsGroup.GET("/crime-stats", h.getCrimeStats)
		analyticsGroup.GET("/trends", h.getTrends)
		analyticsGroup.GET("/hotspots", h.getHotspots)
		analyticsGroup.GET("/predictions", h.getPredictions)
		analyticsGroup.GET("/dashboard-summary", h.getDashboardSummary)
		analyticsGroup.GET("/performance", h.getPerformance)
		analyticsGroup.GET("/geographic", h.getGeographic)
		analyticsGroup.GET("/time-based", h.getTimeBased)
	}

	// Поиск локаций доступен любому аутентифицированному клиенту
	secured.GET("/locations/nearby", h.getNearbyLocations)
}
