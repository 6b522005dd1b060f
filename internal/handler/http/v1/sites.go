package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/fortiq_portal/internal/service"
	"github.com/sirupsen/logrus"
)

// sitesTab читает вкладку из пути; неизвестная вкладка - 404
func sitesTab(c *gin.Context, log *logrus.Entry) (service.SitesTab, bool) {
	tab, err := service.ParseSitesTab(c.Param("tab"))
	if err != nil {
		respondError(c, log, err)
		return "", false
	}
	return tab, true
}

// @Summary Sites tab
// @Description Snapshot of the assigned or unassigned sites tab. The first access loads it.
// @Tags Sites
// @Produce json
// @Security SessionAuth
// @Param tab path string true "assigned or unassigned"
// @Success 200 {object} service.SitesTabView
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Unknown tab"
// @Router /agency/sites/{tab} [get]
func (h *Handler) getSitesTab(c *gin.Context) {
	log := h.logger.WithField("method", "getSitesTab")
	tab, ok := sitesTab(c, log)
	if !ok {
		return
	}

	view, err := h.sitesService.Tab(c.Request.Context(), currentSession(c), tab)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update sites filters
// @Description Update search, patrolling officer or city filter and reload from page 1.
// @Tags Sites
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param tab path string true "assigned or unassigned"
// @Param filters body SitesFiltersRequest true "Filters"
// @Success 200 {object} service.SitesTabView
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Unknown tab"
// @Router /agency/sites/{tab}/filters [put]
func (h *Handler) updateSitesFilters(c *gin.Context) {
	log := h.logger.WithField("method", "updateSitesFilters")
	tab, ok := sitesTab(c, log)
	if !ok {
		return
	}
	var input SitesFiltersRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	view, err := h.sitesService.SetFilters(c.Request.Context(), currentSession(c), tab, DTOToSitesFilters(input))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Select region
// @Description Select a region, reset the city and reload cities and the list.
// @Tags Sites
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param tab path string true "assigned or unassigned"
// @Param region body RegionRequest true "Region id or all"
// @Success 200 {object} service.SitesTabView
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Unknown tab"
// @Router /agency/sites/{tab}/region [put]
func (h *Handler) selectSitesRegion(c *gin.Context) {
	log := h.logger.WithField("method", "selectSitesRegion")
	tab, ok := sitesTab(c, log)
	if !ok {
		return
	}
	var input RegionRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	view, err := h.sitesService.SelectRegion(c.Request.Context(), currentSession(c), tab, input.Region)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Move sites page
// @Description Go to the next or previous page, or to a page number.
// @Tags Sites
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param tab path string true "assigned or unassigned"
// @Param move body PageMoveRequest true "Direction or page"
// @Success 200 {object} service.SitesTabView
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Unknown tab"
// @Router /agency/sites/{tab}/page [post]
func (h *Handler) moveSitesPage(c *gin.Context) {
	log := h.logger.WithField("method", "moveSitesPage")
	tab, ok := sitesTab(c, log)
	if !ok {
		return
	}
	var input PageMoveRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	move, err := DTOToPageMove(input)
	if err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.sitesService.Move(c.Request.Context(), currentSession(c), tab, move)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Select patrolling officer
// @Description Set the patrolling officer in the assignment draft of an unassigned site.
// @Tags Assignment
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param siteId path int true "Site ID"
// @Param officer body OfficerRequest true "Officer"
// @Success 200 {object} service.SiteAssignment
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Site is not in the unassigned list"
// @Router /agency/assignments/{siteId}/officer [put]
func (h *Handler) selectOfficer(c *gin.Context) {
	log := h.logger.WithField("method", "selectOfficer")
	siteID, ok := intParam(c, "siteId")
	if !ok {
		return
	}
	var input OfficerRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	view, err := h.sitesService.SelectOfficer(c.Request.Context(), currentSession(c), siteID, input.OfficerID)
	if err != nil {
		respondError(c, log.WithField("site_id", siteID), err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Toggle guard
// @Description Select or deselect a guard; the number of guards never exceeds the site requirement.
// @Tags Assignment
// @Produce json
// @Security SessionAuth
// @Param siteId path int true "Site ID"
// @Param guardId path int true "Guard ID"
// @Success 200 {object} service.GuardToggle
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Site is not in the unassigned list"
// @Router /agency/assignments/{siteId}/guards/{guardId} [post]
func (h *Handler) toggleGuard(c *gin.Context) {
	log := h.logger.WithField("method", "toggleGuard")
	siteID, ok := intParam(c, "siteId")
	if !ok {
		return
	}
	guardID, ok := intParam(c, "guardId")
	if !ok {
		return
	}

	view, err := h.sitesService.ToggleGuard(c.Request.Context(), currentSession(c), siteID, guardID)
	if err != nil {
		respondError(c, log.WithField("site_id", siteID), err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Set geofence perimeter
// @Description Set the geofence perimeter in the assignment draft; it is validated on submit.
// @Tags Assignment
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param siteId path int true "Site ID"
// @Param geofence body GeofenceRequest true "Perimeter"
// @Success 200 {object} service.SiteAssignment
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Site is not in the unassigned list"
// @Router /agency/assignments/{siteId}/geofence [put]
func (h *Handler) setGeofence(c *gin.Context) {
	log := h.logger.WithField("method", "setGeofence")
	siteID, ok := intParam(c, "siteId")
	if !ok {
		return
	}
	var input GeofenceRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	view, err := h.sitesService.SetGeofence(c.Request.Context(), currentSession(c), siteID, input.GeofencePerimeter)
	if err != nil {
		respondError(c, log.WithField("site_id", siteID), err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Assign personnel
// @Description Submit the assignment draft of an unassigned site.
// @Tags Assignment
// @Produce json
// @Security SessionAuth
// @Param siteId path int true "Site ID"
// @Success 200 {object} models.AssignPersonnelResponse
// @Failure 404 {object} map[string]string "Site is not in the unassigned list"
// @Failure 422 {object} map[string]string "Draft is incomplete"
// @Failure 502 {object} map[string]string "Upstream error"
// @Router /agency/assignments/{siteId}/assign [post]
func (h *Handler) assignSite(c *gin.Context) {
	log := h.logger.WithField("method", "assignSite")
	siteID, ok := intParam(c, "siteId")
	if !ok {
		return
	}

	resp, err := h.sitesService.Assign(c.Request.Context(), currentSession(c), siteID)
	if err != nil {
		respondError(c, log.WithField("site_id", siteID), err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
