package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/fortiq_portal/internal/models"
	"github.com/sirupsen/logrus"
)

type AgencyHome struct {
	Counts    models.AgencyCounts `json:"counts"`
	Cards     []models.Card       `json:"cards"`
	Incidents []models.Card       `json:"incident_status"`
}

type TowercoHome struct {
	Counts models.TowercoCounts `json:"counts"`
	Cards  []models.Card        `json:"cards"`
}

// DashboardService определяет контракт домашних страниц порталов и переключателя модулей
type DashboardService interface {
	AgencyHome(ctx context.Context, session *models.Session) (*AgencyHome, error)
	TowercoHome(ctx context.Context, session *models.Session) (*TowercoHome, error)
	Modules(session *models.Session, path string) []models.Module
}

type dashboardService struct {
	api    API
	logger *logrus.Logger
}

func NewDashboardService(api API, logger *logrus.Logger) DashboardService {
	return &dashboardService{
		api:    api,
		logger: logger,
	}
}

func (s *dashboardService) AgencyHome(ctx context.Context, session *models.Session) (*AgencyHome, error) {
	counts, err := s.api.AgencyDashboard(ctx, session.Token, session.OrgCode())
	if err != nil {
		s.logger.WithError(err).WithField("org", session.OrgCode()).Error("Failed to fetch agency dashboard")
		return nil, fmt.Errorf("service: could not load agency dashboard: %w", err)
	}
	if counts == nil {
		counts = &models.AgencyCounts{}
	}
	return &AgencyHome{
		Counts: *counts,
		Cards: []models.Card{
			{Key: "assigned_sites", Label: "Assigned Sites", Count: counts.TotalAssignedSitesCount, Description: "Sites with assigned personnel", Href: "/agency/sites?tab=assigned"},
			{Key: "unassigned_sites", Label: "Unassigned Sites", Count: counts.TotalUnassignedSitesCount, Description: "Sites needing personnel", Href: "/agency/sites?tab=unassigned"},
			{Key: "patrol_officers", Label: "Patrolling Officers", Count: counts.TotalPatrolOfficersCount, Description: "Team leaders managing guards", Href: "/agency/patrolling-officers"},
			{Key: "guards", Label: "Guards", Count: counts.TotalGuardsCount, Description: "Personnel across all sites", Href: "/agency/guards"},
		},
		Incidents: []models.Card{
			{Key: "sos", Label: "SOS", Count: counts.SOSCount, Href: "/agency/incidents?status=sos"},
			{Key: "active", Label: "Active", Count: counts.ActiveIncidentsCount, Href: "/agency/incidents?status=active"},
			{Key: "under-review", Label: "Under Review", Count: counts.UnderReviewIncidentsCount, Href: "/agency/incidents?status=under-review"},
			{Key: "resolved", Label: "Resolved", Count: counts.ResolvedIncidentsCount, Href: "/agency/incidents?status=resolved"},
		},
	}, nil
}

func (s *dashboardService) TowercoHome(ctx context.Context, session *models.Session) (*TowercoHome, error) {
	counts, err := s.api.TowercoDashboard(ctx, session.Token, session.OrgCode())
	if err != nil {
		s.logger.WithError(err).WithField("org", session.OrgCode()).Error("Failed to fetch towerco dashboard")
		return nil, fmt.Errorf("service: could not load towerco dashboard: %w", err)
	}
	if counts == nil {
		counts = &models.TowercoCounts{}
	}
	return &TowercoHome{
		Counts: *counts,
		Cards: []models.Card{
			{Key: "active_incidents", Label: "Active Incidents", Count: counts.ActiveIncidentsCount, Href: "/towerco/incidents?status=active"},
			{Key: "guards", Label: "Total Guards", Count: counts.TotalGuardsCount, Href: "/towerco/guards"},
			{Key: "sites", Label: "Total Sites", Count: counts.TotalSitesCount, Href: "/towerco/sites"},
			{Key: "agencies", Label: "Security Agencies", Count: counts.TotalAgenciesCount, Href: "/towerco/agencies"},
		},
	}, nil
}

var allModules = []models.Module{
	{Name: "Terriq", Key: "realestate", Href: "/"},
	{Name: "Fortiq", Key: "security"},
	{Name: "Energy", Key: "energy", Href: "#"},
	{Name: "Incident Management", Key: "incident management", Href: "#"},
	{Name: "Preventive Maintenance", Key: "preventive maintenance", Href: "#"},
	{Name: "Site Master", Key: "site master", Href: "#"},
}

// Modules - переключатель модулей. Отключенные модули ведут на "#",
// Fortiq ведет на домашнюю страницу портала роли и активен на страницах порталов.
func (s *dashboardService) Modules(session *models.Session, path string) []models.Module {
	inPortal := strings.HasPrefix(path, "/agency") || strings.HasPrefix(path, "/towerco")
	modules := make([]models.Module, 0, len(allModules))
	for _, m := range allModules {
		m.Enabled = session.HasModule(m.Key)
		if m.Key == "security" {
			m.Href = session.Role.HomePath()
			m.Active = inPortal
		}
		if !m.Enabled {
			m.Href = "#"
		}
		modules = append(modules, m)
	}
	return modules
}
