package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/fortiq_portal/internal/assignment"
	"github.com/shenikar/fortiq_portal/internal/service"
	"github.com/shenikar/fortiq_portal/pkg/fetcher"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mocks/services.go -package=mocks github.com/shenikar/fortiq_portal/internal/service SessionService,SitesService,ReportService,DashboardService

type Handler struct {
	sessionService   service.SessionService
	sitesService     service.SitesService
	reportService    service.ReportService
	dashboardService service.DashboardService
	logger           *logrus.Logger
	validate         *validator.Validate
}

func NewHandler(
	sessionService service.SessionService,
	sitesService service.SitesService,
	reportService service.ReportService,
	dashboardService service.DashboardService,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		sessionService:   sessionService,
		sitesService:     sitesService,
		reportService:    reportService,
		dashboardService: dashboardService,
		logger:           logger,
		validate:         validator.New(),
	}
}

// bindJSON разбирает и проверяет тело запроса; при ошибке ответ уже отправлен
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// intParam читает положительный числовой параметр пути
func intParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// respondError переводит ошибку сервиса в HTTP-статус
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	var validationErr *assignment.ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.WithError(err).Warn("Assignment validation failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validationErr.Message})
	case errors.Is(err, service.ErrInvalidFilter):
		log.WithError(err).Warn("Invalid filter")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownTab),
		errors.Is(err, service.ErrUnknownTable),
		errors.Is(err, assignment.ErrUnknownSite):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
	case errors.Is(err, service.ErrNoOrganization):
		log.WithError(err).Warn("Session without organization")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case fetcher.StatusCode(err) != 0:
		log.WithError(err).Warn("Upstream API rejected request")
		resp := gin.H{"error": "upstream request failed"}
		if detail := fetcher.Detail(err); detail != "" {
			resp["detail"] = detail
		}
		c.JSON(http.StatusBadGateway, resp)
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Create a portal session
// @Description Create a session from the login response (token, role, user, organization).
// @Tags Session
// @Accept json
// @Produce json
// @Param session body CreateSessionRequest true "Login data"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or missing organization"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /session [post]
func (h *Handler) createSession(c *gin.Context) {
	var input CreateSessionRequest
	log := h.logger.WithField("method", "createSession")
	if !h.bindJSON(c, log, &input) {
		return
	}

	session, err := h.sessionService.Create(c.Request.Context(), DTOToNewSession(input))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToSessionResponse(session))
}

// @Summary Get current session
// @Description Get the profile of the current session.
// @Tags Session
// @Produce json
// @Security SessionAuth
// @Success 200 {object} SessionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /session [get]
func (h *Handler) getSession(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToSessionResponse(currentSession(c)))
}

// @Summary Log out
// @Description Delete the session together with its pages and queued notifications.
// @Tags Session
// @Security SessionAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /session [delete]
func (h *Handler) deleteSession(c *gin.Context) {
	session := currentSession(c)
	log := h.logger.WithField("method", "deleteSession").WithField("session_id", session.ID)

	if err := h.sessionService.Delete(c.Request.Context(), session.ID); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Module switcher
// @Description List portal modules with enabled flags for the session organization.
// @Tags Session
// @Produce json
// @Security SessionAuth
// @Param path query string false "Current page path"
// @Success 200 {object} ModulesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /modules [get]
func (h *Handler) listModules(c *gin.Context) {
	modules := h.dashboardService.Modules(currentSession(c), c.Query("path"))
	c.JSON(http.StatusOK, ModulesResponse{Modules: modules})
}

// @Summary Drain notifications
// @Description Return queued notifications oldest first and clear the queue.
// @Tags Session
// @Produce json
// @Security SessionAuth
// @Success 200 {object} NotificationsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications [get]
func (h *Handler) drainNotifications(c *gin.Context) {
	session := currentSession(c)
	log := h.logger.WithField("method", "drainNotifications").WithField("session_id", session.ID)

	notifications, err := h.sessionService.Notifications(c.Request.Context(), session.ID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, NotificationsResponse{Notifications: ensureNotifications(notifications)})
}

// @Summary Agency home
// @Description Site, personnel and incident counts for the agency home page.
// @Tags Dashboard
// @Produce json
// @Security SessionAuth
// @Success 200 {object} service.AgencyHome
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 502 {object} map[string]string "Upstream error"
// @Router /agency/dashboard [get]
func (h *Handler) agencyDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "agencyDashboard")

	home, err := h.dashboardService.AgencyHome(c.Request.Context(), currentSession(c))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, home)
}

// @Summary Towerco home
// @Description Incident, guard, site and agency counts for the towerco home page.
// @Tags Dashboard
// @Produce json
// @Security SessionAuth
// @Success 200 {object} service.TowercoHome
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 502 {object} map[string]string "Upstream error"
// @Router /towerco/dashboard [get]
func (h *Handler) towercoDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "towercoDashboard")

	home, err := h.dashboardService.TowercoHome(c.Request.Context(), currentSession(c))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, home)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
