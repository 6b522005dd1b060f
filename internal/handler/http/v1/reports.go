package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// reportStatus - 404 для ненайденного отчета, тело все равно отдается
func reportStatus(found bool) int {
	if found {
		return http.StatusOK
	}
	return http.StatusNotFound
}

// @Summary Patrolling officer report
// @Description Officer profile, metrics and incidents filtered by year, month and status.
// @Tags Reports
// @Produce json
// @Security SessionAuth
// @Param id path int true "Officer ID"
// @Param year query string false "Year or all"
// @Param month query string false "Month 1-12 or all"
// @Param status query string false "Incident status or all"
// @Success 200 {object} service.OfficerReportView
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 404 {object} service.OfficerReportView "Officer not found"
// @Router /agency/officers/{id} [get]
func (h *Handler) officerReport(c *gin.Context) {
	log := h.logger.WithField("method", "officerReport")
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var input IncidentFiltersRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.reportService.OfficerReport(c.Request.Context(), currentSession(c), id, DTOToReportFilters(input))
	if err != nil {
		respondError(c, log.WithField("officer_id", id), err)
		return
	}
	c.JSON(reportStatus(view.Found), view)
}

// @Summary Move officer incidents page
// @Description Follow the next or previous link of the officer incidents table.
// @Tags Reports
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Officer ID"
// @Param move body DirectionRequest true "Direction"
// @Success 200 {object} service.OfficerReportView
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /agency/officers/{id}/incidents/page [post]
func (h *Handler) moveOfficerIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "moveOfficerIncidents")
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var input DirectionRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	view, err := h.reportService.MoveOfficerIncidents(c.Request.Context(), currentSession(c), id, input.Direction)
	if err != nil {
		respondError(c, log.WithField("officer_id", id), err)
		return
	}
	c.JSON(reportStatus(view.Found), view)
}

// @Summary Security agency report
// @Description Agency profile, performance for year and month, assigned sites and incidents.
// @Tags Reports
// @Produce json
// @Security SessionAuth
// @Param id path int true "Agency ID"
// @Param year query string false "Year or all"
// @Param month query string false "Month 1-12 or all"
// @Success 200 {object} service.AgencyReportView
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 404 {object} service.AgencyReportView "Agency not found"
// @Router /towerco/agencies/{id} [get]
func (h *Handler) agencyReport(c *gin.Context) {
	log := h.logger.WithField("method", "agencyReport")
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var input PerformanceFiltersRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.reportService.AgencyReport(c.Request.Context(), currentSession(c), id, DTOToPerformanceFilters(input))
	if err != nil {
		respondError(c, log.WithField("agency_id", id), err)
		return
	}
	c.JSON(reportStatus(view.Found), view)
}

// @Summary Agency incidents filters
// @Description Update year, month and status filters of the agency incidents table.
// @Tags Reports
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Agency ID"
// @Param filters body IncidentFiltersRequest true "Filters"
// @Success 200 {object} service.AgencyReportView
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /towerco/agencies/{id}/incidents/filters [put]
func (h *Handler) setAgencyIncidentFilters(c *gin.Context) {
	log := h.logger.WithField("method", "setAgencyIncidentFilters")
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var input IncidentFiltersRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	view, err := h.reportService.SetAgencyIncidentFilters(c.Request.Context(), currentSession(c), id, DTOToReportFilters(input))
	if err != nil {
		respondError(c, log.WithField("agency_id", id), err)
		return
	}
	c.JSON(reportStatus(view.Found), view)
}

// @Summary Move agency table page
// @Description Follow the next or previous link of the sites or incidents table.
// @Tags Reports
// @Accept json
// @Produce json
// @Security SessionAuth
// @Param id path int true "Agency ID"
// @Param table path string true "sites or incidents"
// @Param move body DirectionRequest true "Direction"
// @Success 200 {object} service.AgencyReportView
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Unknown table"
// @Router /towerco/agencies/{id}/{table}/page [post]
func (h *Handler) moveAgencyTable(c *gin.Context) {
	log := h.logger.WithField("method", "moveAgencyTable")
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var input DirectionRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	view, err := h.reportService.MoveAgencyTable(c.Request.Context(), currentSession(c), id, c.Param("table"), input.Direction)
	if err != nil {
		respondError(c, log.WithField("agency_id", id), err)
		return
	}
	c.JSON(reportStatus(view.Found), view)
}
