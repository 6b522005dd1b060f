package service

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// workspace - живые страницы одной сессии. Страница создается при первом
// обращении и хранит фильтры, пагинацию и черновики между запросами.
type workspace struct {
	mu       sync.Mutex
	lastUsed time.Time
	sites    *SitesPage
	officers map[int]*OfficerReportPage
	agencies map[int]*AgencyReportPage
}

// Workspaces хранит рабочие области сессий в памяти процесса
type Workspaces struct {
	idleTTL time.Duration
	logger  *logrus.Logger
	now     func() time.Time

	mu    sync.Mutex
	items map[string]*workspace
}

func NewWorkspaces(idleTTL time.Duration, logger *logrus.Logger) *Workspaces {
	return &Workspaces{
		idleTTL: idleTTL,
		logger:  logger,
		now:     time.Now,
		items:   make(map[string]*workspace),
	}
}

// get возвращает рабочую область сессии, создавая ее при необходимости
func (w *Workspaces) get(sessionID string) *workspace {
	w.mu.Lock()
	defer w.mu.Unlock()
	ws, ok := w.items[sessionID]
	if !ok {
		ws = &workspace{
			officers: make(map[int]*OfficerReportPage),
			agencies: make(map[int]*AgencyReportPage),
		}
		w.items[sessionID] = ws
	}
	ws.lastUsed = w.now()
	return ws
}

// Drop удаляет рабочую область сессии (выход пользователя)
func (w *Workspaces) Drop(sessionID string) {
	w.mu.Lock()
	delete(w.items, sessionID)
	w.mu.Unlock()
}

func (w *Workspaces) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

// Sweep удаляет рабочие области, к которым не обращались дольше idleTTL
func (w *Workspaces) Sweep() int {
	if w.idleTTL <= 0 {
		return 0
	}
	deadline := w.now().Add(-w.idleTTL)

	w.mu.Lock()
	defer w.mu.Unlock()
	removed := 0
	for id, ws := range w.items {
		if ws.lastUsed.Before(deadline) {
			delete(w.items, id)
			removed++
		}
	}
	return removed
}

// Start запускает горутину, которая периодически вычищает простаивающие рабочие области
func (w *Workspaces) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 || w.idleTTL <= 0 {
		return
	}
	w.logger.Info("Starting workspace sweeper...")
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping workspace sweeper.")
				return
			case <-ticker.C:
				if removed := w.Sweep(); removed > 0 {
					w.logger.WithField("removed", removed).Debug("Idle workspaces swept")
				}
			}
		}
	}()
}
