package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/fortiq_portal/internal/models"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Вход создает сессию, остальные маршруты требуют ее
	api.POST("/session", h.createSession)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	authed := api.Group("")
	authed.Use(SessionAuthMiddleware(h.sessionService, h.logger))
	{
		authed.GET("/session", h.getSession)
		authed.DELETE("/session", h.deleteSession)
		authed.GET("/modules", h.listModules)
		authed.GET("/notifications", h.drainNotifications)
	}

	// Портал охранного агентства
	agency := authed.Group("/agency")
	agency.Use(RequirePortal(models.PortalAgency, h.logger))
	{
		agency.GET("/dashboard", h.agencyDashboard)

		agency.GET("/sites/:tab", h.getSitesTab)
		agency.PUT("/sites/:tab/filters", h.updateSitesFilters)
		agency.PUT("/sites/:tab/region", h.selectSitesRegion)
		agency.POST("/sites/:tab/page", h.moveSitesPage)

		// Черновики назначения объектов вкладки unassigned
		agency.PUT("/assignments/:siteId/officer", h.selectOfficer)
		agency.POST("/assignments/:siteId/guards/:guardId", h.toggleGuard)
		agency.PUT("/assignments/:siteId/geofence", h.setGeofence)
		agency.POST("/assignments/:siteId/assign", h.assignSite)

		agency.GET("/officers/:id", h.officerReport)
		agency.POST("/officers/:id/incidents/page", h.moveOfficerIncidents)
	}

	// Портал towerco
	towerco := authed.Group("/towerco")
	towerco.Use(RequirePortal(models.PortalTowerco, h.logger))
	{
		towerco.GET("/dashboard", h.towercoDashboard)
		towerco.GET("/agencies/:id", h.agencyReport)
		towerco.PUT("/agencies/:id/incidents/filters", h.setAgencyIncidentFilters)
		towerco.POST("/agencies/:id/:table/page", h.moveAgencyTable)
	}
}
