package service

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/shenikar/fortiq_portal/internal/models"
	"github.com/shenikar/fortiq_portal/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

const (
	testSessionID = "sess-1"
	testToken     = "tok"
	testOrg       = "ACME"
)

// fixture - моки API и очереди уведомлений с общими рабочими областями
type fixture struct {
	api        *mocks.MockAPI
	notifier   *mocks.MockNotifier
	store      *mocks.MockSessionStore
	workspaces *Workspaces
	logger     *logrus.Logger

	mu    sync.Mutex
	notes []models.Notification
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return &fixture{
		api:        mocks.NewMockAPI(ctrl),
		notifier:   mocks.NewMockNotifier(ctrl),
		store:      mocks.NewMockSessionStore(ctrl),
		workspaces: NewWorkspaces(0, logger),
		logger:     logger,
	}
}

// captureNotifications разрешает любые уведомления сессии и запоминает их
func (f *fixture) captureNotifications() {
	f.notifier.EXPECT().
		Notify(gomock.Any(), testSessionID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, n models.Notification) error {
			f.mu.Lock()
			f.notes = append(f.notes, n)
			f.mu.Unlock()
			return nil
		}).
		AnyTimes()
}

func (f *fixture) notifications() []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Notification(nil), f.notes...)
}

func agencySession() *models.Session {
	return &models.Session{
		ID:    testSessionID,
		Token: testToken,
		Role:  models.RoleAgencyAdmin,
		User: models.User{
			ID:            1,
			Country:       &models.Country{ID: 1, Name: "Pakistan"},
			Subcontractor: &models.Organization{ID: 3, Code: testOrg, SubscribedModules: []string{"Security", "Energy"}},
		},
	}
}

func towercoSession() *models.Session {
	return &models.Session{
		ID:    testSessionID,
		Token: testToken,
		Role:  models.RoleTowerco,
		User: models.User{
			ID:           2,
			Organization: &models.Organization{ID: 4, Code: "TC", SubscribedModules: []string{"security"}},
		},
	}
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }
