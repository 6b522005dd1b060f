package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/fortiq_portal/internal/models"
	"github.com/shenikar/fortiq_portal/internal/service"
	"github.com/sirupsen/logrus"
)

const sessionContextKey = "session"

// sessionIDFromRequest достает идентификатор сессии из X-Session-ID или Authorization: Bearer
func sessionIDFromRequest(c *gin.Context) string {
	if id := c.GetHeader("X-Session-ID"); id != "" {
		return id
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// SessionAuthMiddleware - middleware, загружающая сессию портала
func SessionAuthMiddleware(sessions service.SessionService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := sessionIDFromRequest(c)
		if id == "" {
			log.Warn("Session ID missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session required"})
			return
		}

		session, err := sessions.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrSessionNotFound) {
				log.WithField("session_id", id).Warn("Unknown session")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
				return
			}
			log.WithError(err).Error("Failed to load session")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// RequirePortal пропускает только роли, которым принадлежит портал
func RequirePortal(portal models.Portal, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := currentSession(c)
		if session == nil || session.Role.Portal() != portal {
			log.WithField("portal", portal).Warn("Role is not allowed for portal")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not authorized for this portal"})
			return
		}
		c.Next()
	}
}

func currentSession(c *gin.Context) *models.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	session, _ := v.(*models.Session)
	return session
}
