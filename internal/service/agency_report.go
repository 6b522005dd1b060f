package service

import (
	"context"
	"fmt"
	"maps"
	"net/url"
	"sync"
	"time"

	"github.com/shenikar/fortiq_portal/internal/endpoint"
	"github.com/shenikar/fortiq_portal/internal/listview"
	"github.com/shenikar/fortiq_portal/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	TableSites     = "sites"
	TableIncidents = "incidents"

	agencyNotFound = "Agency not found."
)

// AgencyPerformanceView - показатели агентства в процентах; null считается нулем
type AgencyPerformanceView struct {
	Overall            models.Percent `json:"overall"`
	IncidentResolution models.Percent `json:"incident_resolution"`
	SiteVisit          models.Percent `json:"site_visit"`
	GuardCheckin       models.Percent `json:"guard_checkin"`
	Selfie             models.Percent `json:"selfie"`
}

func newAgencyPerformanceView(p *models.AgencyPerformance) *AgencyPerformanceView {
	if p == nil {
		return nil
	}
	return &AgencyPerformanceView{
		Overall:            models.PercentOf(p.OverallPerformance),
		IncidentResolution: models.PercentOf(p.IncidentResolution),
		SiteVisit:          models.PercentOf(p.SiteVisitAccuracy),
		GuardCheckin:       models.PercentOf(p.GuardCheckinAccuracy),
		Selfie:             models.PercentOf(p.SelfieAccuracy),
	}
}

type AgencyReportView struct {
	Found              bool                                         `json:"found"`
	Message            string                                       `json:"message,omitempty"`
	Report             *models.AgencyReport                         `json:"report,omitempty"`
	Performance        *AgencyPerformanceView                       `json:"performance,omitempty"`
	PerformanceFilters PerformanceFilters                           `json:"performance_filters"`
	PerformanceYears   []string                                     `json:"performance_years"`
	IncidentYears      []string                                     `json:"incident_years"`
	IncidentFilters    ReportFilters                                `json:"incident_filters"`
	AssignedSites      listview.Snapshot[models.AgencyAssignedSite] `json:"assigned_sites"`
	Incidents          listview.Snapshot[models.Incident]           `json:"incidents"`
}

// AgencyReportPage - отчет towerco по охранному агентству: показатели за период,
// назначенные объекты и инциденты агентства.
type AgencyReportPage struct {
	session  *models.Session
	agencyID int
	api      API
	notify   func(context.Context, models.Notification)
	logger   *logrus.Logger
	now      func() time.Time
	path     string
	sites    *listview.List[models.AgencyAssignedSite]

	mu              sync.Mutex
	gen             uint64
	report          *models.AgencyReport
	notFound        bool
	perfFilters     map[string]string
	perfInput       PerformanceFilters
	incidentInput   ReportFilters
	incidents       *listview.List[models.Incident]
	reportIncidents []models.Incident
}

func NewAgencyReportPage(session *models.Session, agencyID int, api API, notify func(context.Context, models.Notification), logger *logrus.Logger) *AgencyReportPage {
	path := endpoint.AgencyReport(session.OrgCode(), agencyID)
	token := session.Token
	sites := listview.New(listview.Config{
		Name:             "agency_assigned_sites",
		Endpoint:         path,
		ErrorMessage:     "Failed to load next page of sites.",
		PageErrorMessage: "Failed to load next page of sites.",
		EmptyMessage:     "No assigned sites found.",
	}, func(ctx context.Context, url string) (*models.Page[models.AgencyAssignedSite], error) {
		return api.AgencyAssignedSites(ctx, token, url)
	}, notify, logger)

	return &AgencyReportPage{
		session:  session,
		agencyID: agencyID,
		api:      api,
		notify:   notify,
		logger:   logger,
		now:      time.Now,
		path:     path,
		sites:    sites,
	}
}

// Load загружает отчет при первом обращении и при смене периода показателей
func (p *AgencyReportPage) Load(ctx context.Context, f PerformanceFilters) (*AgencyReportView, error) {
	values, err := f.values()
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	fresh := p.report != nil && maps.Equal(values, p.perfFilters)
	p.mu.Unlock()

	if !fresh {
		p.loadReport(ctx, f, values)
	}
	return p.view(), nil
}

func (p *AgencyReportPage) loadReport(ctx context.Context, f PerformanceFilters, values map[string]string) {
	log := p.logger.WithFields(logrus.Fields{
		"service":   "agency_report",
		"method":    "loadReport",
		"agency_id": p.agencyID,
	})

	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	report, err := p.api.AgencyReport(ctx, p.session.Token, endpoint.WithQuery(p.path, queryOf(values)))

	p.mu.Lock()
	if gen != p.gen {
		p.mu.Unlock()
		log.Debug("Discarding superseded agency report")
		return
	}
	if err != nil || report == nil {
		if p.report == nil {
			p.notFound = true
		}
		p.mu.Unlock()
		log.WithError(err).Warn("Failed to fetch agency report")
		p.notify(ctx, models.ErrorNotification("Could not load agency report data."))
		return
	}
	p.report = report
	p.notFound = false
	p.perfFilters = values
	p.perfInput = f
	if report.Incidents != nil {
		p.reportIncidents = report.Incidents.Results
	}
	incidents := p.incidentsLocked(report.Name)
	p.mu.Unlock()

	p.sites.Seed(report.AssignedSites)
	if !incidents.Loaded() {
		incidents.Seed(report.Incidents)
	}
	log.Info("Agency report loaded")

	// Таблица инцидентов живет отдельно от отчета и перезапрашивается со своими фильтрами
	_ = incidents.Load(ctx)
}

// incidentsLocked создает список инцидентов агентства, когда становится известно его имя
func (p *AgencyReportPage) incidentsLocked(agencyName string) *listview.List[models.Incident] {
	if p.incidents != nil {
		return p.incidents
	}
	token := p.session.Token
	p.incidents = listview.New(listview.Config{
		Name:         "agency_incidents",
		Endpoint:     endpoint.OrgIncidents(p.session.OrgCode()),
		BaseQuery:    url.Values{"agency_name": {agencyName}},
		ErrorMessage: "Failed to load incidents.",
		EmptyMessage: "No incidents found for the selected filters.",
	}, func(ctx context.Context, url string) (*models.Page[models.Incident], error) {
		return p.api.Incidents(ctx, token, url)
	}, p.notify, p.logger)
	return p.incidents
}

// SetIncidentFilters перезапрашивает таблицу инцидентов; до загрузки отчета фильтры недоступны
func (p *AgencyReportPage) SetIncidentFilters(ctx context.Context, f ReportFilters) (*AgencyReportView, error) {
	values, err := f.values()
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	incidents := p.incidents
	if incidents != nil {
		p.incidentInput = f
	}
	p.mu.Unlock()

	if incidents != nil {
		_ = incidents.SetFilters(ctx, values)
	}
	return p.view(), nil
}

// Move листает таблицу объектов или инцидентов по ссылкам next/previous
func (p *AgencyReportPage) Move(ctx context.Context, table, direction string) (*AgencyReportView, error) {
	switch table {
	case TableSites:
		_ = movePage(ctx, p.sites, PageMove{Direction: direction, Page: 1})
	case TableIncidents:
		p.mu.Lock()
		incidents := p.incidents
		p.mu.Unlock()
		if incidents != nil {
			_ = movePage(ctx, incidents, PageMove{Direction: direction, Page: 1})
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	return p.view(), nil
}

func (p *AgencyReportPage) view() *AgencyReportView {
	now := p.now()
	v := &AgencyReportView{
		AssignedSites:    p.sites.Snapshot(),
		PerformanceYears: recentYears(now, 5),
		IncidentYears:    []string{},
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	v.PerformanceFilters = p.perfInput
	v.IncidentFilters = p.incidentInput
	if p.incidents != nil {
		v.Incidents = p.incidents.Snapshot()
	} else {
		v.Incidents = listview.Snapshot[models.Incident]{Status: listview.StatusIdle, Rows: []models.Incident{}}
	}
	if p.report == nil {
		if p.notFound {
			v.Message = agencyNotFound
		}
		return v
	}

	report := *p.report
	report.AssignedSites = nil
	report.Incidents = nil
	v.Found = true
	v.Report = &report
	v.Performance = newAgencyPerformanceView(p.report.Performance)
	v.IncidentYears = incidentYears(p.reportIncidents, now, false)
	return v
}
