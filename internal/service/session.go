package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/fortiq_portal/internal/models"
	"github.com/sirupsen/logrus"
)

// NewSession - данные пользователя, полученные клиентом при входе
type NewSession struct {
	Token        string
	Role         models.Role
	User         models.User
	Organization *models.Organization
}

// SessionService определяет контракт управления сессиями портала
type SessionService interface {
	Create(ctx context.Context, in NewSession) (*models.Session, error)
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	Notifications(ctx context.Context, id string) ([]models.Notification, error)
}

type sessionService struct {
	store      SessionStore
	notifier   Notifier
	workspaces *Workspaces
	logger     *logrus.Logger
}

func NewSessionService(store SessionStore, notifier Notifier, workspaces *Workspaces, logger *logrus.Logger) SessionService {
	return &sessionService{
		store:      store,
		notifier:   notifier,
		workspaces: workspaces,
		logger:     logger,
	}
}

// Create создает сессию. Организация из ответа входа подставляется в профиль,
// если профиль пришел без нее.
func (s *sessionService) Create(ctx context.Context, in NewSession) (*models.Session, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "session",
		"method":  "Create",
		"role":    in.Role,
	})

	user := in.User
	if user.Organization == nil && user.Subcontractor == nil && in.Organization != nil {
		org := *in.Organization
		if in.Role.Portal() == models.PortalAgency {
			user.Subcontractor = &org
		} else {
			user.Organization = &org
		}
	}

	session := &models.Session{
		ID:        uuid.NewString(),
		Token:     in.Token,
		Role:      in.Role,
		User:      user,
		CreatedAt: time.Now().UTC(),
	}
	if session.OrgCode() == "" {
		log.Warn("Session has no organization")
		return nil, ErrNoOrganization
	}

	if err := s.store.Save(ctx, session); err != nil {
		log.WithError(err).Error("Failed to save session")
		return nil, fmt.Errorf("service: could not create session: %w", err)
	}

	log.WithField("session_id", session.ID).Info("Session created")
	return session, nil
}

func (s *sessionService) Get(ctx context.Context, id string) (*models.Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not get session: %w", err)
	}
	return session, nil
}

// Delete завершает сессию: удаляет ее, очередь уведомлений и рабочую область
func (s *sessionService) Delete(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "session",
		"method":     "Delete",
		"session_id": id,
	})

	s.workspaces.Drop(id)
	if err := s.notifier.Clear(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to clear notifications")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete session")
		return fmt.Errorf("service: could not delete session: %w", err)
	}

	log.Info("Session deleted")
	return nil
}

func (s *sessionService) Notifications(ctx context.Context, id string) ([]models.Notification, error) {
	items, err := s.notifier.Drain(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not drain notifications: %w", err)
	}
	return items, nil
}
