package service

import (
	"context"
	"errors"

	"github.com/shenikar/fortiq_portal/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownTab      = errors.New("unknown sites tab")
	ErrUnknownTable    = errors.New("unknown report table")
	ErrNoOrganization  = errors.New("session has no organization")
)

// API определяет контракт удаленного REST API. Методы, принимающие url,
// ходят по готовому пути или по ссылке пагинации из ответа.
type API interface {
	Regions(ctx context.Context, token string, countryID int) ([]models.Region, error)
	Cities(ctx context.Context, token string, countryID int, regionID string) ([]models.City, error)
	Sites(ctx context.Context, token, url string) (*models.Page[models.Site], error)
	PatrolOfficers(ctx context.Context, token, orgCode string) ([]models.PatrollingOfficer, error)
	UnassignedGuards(ctx context.Context, token, orgCode string) ([]models.Guard, error)
	AssignPersonnel(ctx context.Context, token, orgCode string, siteID int, req models.AssignPersonnelRequest) (*models.AssignPersonnelResponse, error)
	OfficerReport(ctx context.Context, token, url string) (*models.OfficerReport, error)
	OfficerIncidents(ctx context.Context, token, url string) (*models.Page[models.Incident], error)
	AgencyReport(ctx context.Context, token, url string) (*models.AgencyReport, error)
	AgencyAssignedSites(ctx context.Context, token, url string) (*models.Page[models.AgencyAssignedSite], error)
	Incidents(ctx context.Context, token, url string) (*models.Page[models.Incident], error)
	AgencyDashboard(ctx context.Context, token, orgCode string) (*models.AgencyCounts, error)
	TowercoDashboard(ctx context.Context, token, orgCode string) (*models.TowercoCounts, error)
}

// SessionStore определяет контракт хранилища сессий
type SessionStore interface {
	Save(ctx context.Context, session *models.Session) error
	// Get возвращает ErrSessionNotFound, если сессии нет или она истекла
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// Notifier определяет контракт очереди уведомлений сессии
type Notifier interface {
	Notify(ctx context.Context, sessionID string, n models.Notification) error
	// Drain возвращает накопленные уведомления от старых к новым и очищает очередь
	Drain(ctx context.Context, sessionID string) ([]models.Notification, error)
	Clear(ctx context.Context, sessionID string) error
}

// sessionNotify привязывает очередь уведомлений к сессии. Уведомление
// переживает отмену запроса, ошибка очереди только логируется.
func sessionNotify(notifier Notifier, sessionID string, logger *logrus.Logger) func(context.Context, models.Notification) {
	return func(ctx context.Context, n models.Notification) {
		if err := notifier.Notify(context.WithoutCancel(ctx), sessionID, n); err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"session_id": sessionID,
				"title":      n.Title,
			}).Error("Failed to queue notification")
		}
	}
}
