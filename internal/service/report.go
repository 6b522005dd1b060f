package service

import (
	"context"

	"github.com/shenikar/fortiq_portal/internal/models"
	"github.com/sirupsen/logrus"
)

// ReportService определяет контракт страниц отчетов по офицеру и агентству
type ReportService interface {
	OfficerReport(ctx context.Context, session *models.Session, officerID int, f ReportFilters) (*OfficerReportView, error)
	MoveOfficerIncidents(ctx context.Context, session *models.Session, officerID int, direction string) (*OfficerReportView, error)
	AgencyReport(ctx context.Context, session *models.Session, agencyID int, f PerformanceFilters) (*AgencyReportView, error)
	SetAgencyIncidentFilters(ctx context.Context, session *models.Session, agencyID int, f ReportFilters) (*AgencyReportView, error)
	MoveAgencyTable(ctx context.Context, session *models.Session, agencyID int, table, direction string) (*AgencyReportView, error)
}

type reportService struct {
	api        API
	notifier   Notifier
	workspaces *Workspaces
	logger     *logrus.Logger
}

func NewReportService(api API, notifier Notifier, workspaces *Workspaces, logger *logrus.Logger) ReportService {
	return &reportService{
		api:        api,
		notifier:   notifier,
		workspaces: workspaces,
		logger:     logger,
	}
}

func (s *reportService) officerPage(session *models.Session, officerID int) *OfficerReportPage {
	ws := s.workspaces.get(session.ID)
	ws.mu.Lock()
	defer ws.mu.Unlock()
	page, ok := ws.officers[officerID]
	if !ok {
		page = NewOfficerReportPage(session, officerID, s.api, sessionNotify(s.notifier, session.ID, s.logger), s.logger)
		ws.officers[officerID] = page
	}
	return page
}

func (s *reportService) agencyPage(session *models.Session, agencyID int) *AgencyReportPage {
	ws := s.workspaces.get(session.ID)
	ws.mu.Lock()
	defer ws.mu.Unlock()
	page, ok := ws.agencies[agencyID]
	if !ok {
		page = NewAgencyReportPage(session, agencyID, s.api, sessionNotify(s.notifier, session.ID, s.logger), s.logger)
		ws.agencies[agencyID] = page
	}
	return page
}

func (s *reportService) OfficerReport(ctx context.Context, session *models.Session, officerID int, f ReportFilters) (*OfficerReportView, error) {
	return s.officerPage(session, officerID).Load(ctx, f)
}

func (s *reportService) MoveOfficerIncidents(ctx context.Context, session *models.Session, officerID int, direction string) (*OfficerReportView, error) {
	return s.officerPage(session, officerID).Move(ctx, direction)
}

func (s *reportService) AgencyReport(ctx context.Context, session *models.Session, agencyID int, f PerformanceFilters) (*AgencyReportView, error) {
	return s.agencyPage(session, agencyID).Load(ctx, f)
}

func (s *reportService) SetAgencyIncidentFilters(ctx context.Context, session *models.Session, agencyID int, f ReportFilters) (*AgencyReportView, error) {
	return s.agencyPage(session, agencyID).SetIncidentFilters(ctx, f)
}

func (s *reportService) MoveAgencyTable(ctx context.Context, session *models.Session, agencyID int, table, direction string) (*AgencyReportView, error) {
	return s.agencyPage(session, agencyID).Move(ctx, table, direction)
}
