package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/auth/login", h.login)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(JWTAuthMiddleware(h.authService, h.logger))
	{
		protected.POST("/auth/logout", h.logout)
		protected.GET("/auth/me", h.me)

		occurrences := protected.Group("/occurrences")
		{
			occurrences.GET("/stats", h.getStatistics)
			occurrences.GET("/export", h.exportOccurrences)
			occurrences.POST("", h.createOccurrence)
			occurrences.GET("", h.listOccurrences)
			occurrences.GET("/:id", h.getOccurrence)
			occurrences.PUT("/:id", h.updateOccurrence)
			occurrences.PATCH("/:id/status", h.updateStatus)
			occurrences.DELETE("/:id", h.deleteOccurrence)
			occurrences.POST("/:id/images", h.addImage)
		}

		protected.GET("/vehicles", h.listVehicles)
		protected.GET("/municipalities", h.listMunicipalities)
		protected.GET("/audit-logs", h.listAuditLogs)
	}
}
