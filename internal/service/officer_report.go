package service

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/shenikar/fortiq_portal/internal/endpoint"
	"github.com/shenikar/fortiq_portal/internal/listview"
	"github.com/shenikar/fortiq_portal/internal/models"
	"github.com/sirupsen/logrus"
)

const officerNotFound = "Patrolling Officer not found."

type OfficerReportView struct {
	Found   bool                  `json:"found"`
	Message string                `json:"message,omitempty"`
	Report  *models.OfficerReport `json:"report,omitempty"`
	Name    string                `json:"name,omitempty"`
	// SiteVisit - точность посещения объектов, округленная до целого процента
	SiteVisit           models.Percent                     `json:"site_visit"`
	AverageResponseTime string                             `json:"average_response_time"`
	AvailableYears      []string                           `json:"available_years"`
	PerformanceYears    []string                           `json:"performance_years"`
	Filters             ReportFilters                      `json:"filters"`
	Incidents           listview.Snapshot[models.Incident] `json:"incidents"`
}

// OfficerReportPage - отчет по патрульному офицеру. Отчет загружается один раз,
// смена фильтров перезапрашивает только таблицу инцидентов.
type OfficerReportPage struct {
	session   *models.Session
	officerID int
	api       API
	notify    func(context.Context, models.Notification)
	logger    *logrus.Logger
	now       func() time.Time
	path      string
	incidents *listview.List[models.Incident]

	mu       sync.Mutex
	gen      uint64
	report   *models.OfficerReport
	notFound bool
	filters  ReportFilters
}

func NewOfficerReportPage(session *models.Session, officerID int, api API, notify func(context.Context, models.Notification), logger *logrus.Logger) *OfficerReportPage {
	path := endpoint.OfficerReport(session.OrgCode(), officerID)
	token := session.Token
	incidents := listview.New(listview.Config{
		Name:             "officer_incidents",
		Endpoint:         path,
		ErrorMessage:     "Could not load patrolling officer report.",
		PageErrorMessage: "Failed to load next page of incidents.",
		EmptyMessage:     "No incidents found for the selected filters.",
	}, func(ctx context.Context, url string) (*models.Page[models.Incident], error) {
		return api.OfficerIncidents(ctx, token, url)
	}, notify, logger)

	return &OfficerReportPage{
		session:   session,
		officerID: officerID,
		api:       api,
		notify:    notify,
		logger:    logger,
		now:       time.Now,
		path:      path,
		incidents: incidents,
	}
}

// Load загружает отчет при первом обращении, а дальше применяет фильтры к таблице инцидентов
func (p *OfficerReportPage) Load(ctx context.Context, f ReportFilters) (*OfficerReportView, error) {
	values, err := f.values()
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	loaded := p.report != nil
	p.mu.Unlock()

	if !loaded {
		p.loadReport(ctx, f, values)
		return p.view(), nil
	}
	if !maps.Equal(values, p.incidentFilters()) {
		p.mu.Lock()
		p.filters = f
		p.mu.Unlock()
		_ = p.incidents.SetFilters(ctx, values)
	}
	return p.view(), nil
}

func (p *OfficerReportPage) incidentFilters() map[string]string {
	current := p.incidents.Filters()
	out := map[string]string{"year": models.FilterAll, "month": models.FilterAll, "incident_status": models.FilterAll}
	maps.Copy(out, current)
	return out
}

func (p *OfficerReportPage) loadReport(ctx context.Context, f ReportFilters, values map[string]string) {
	log := p.logger.WithFields(logrus.Fields{
		"service":    "officer_report",
		"method":     "loadReport",
		"officer_id": p.officerID,
	})

	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	report, err := p.api.OfficerReport(ctx, p.session.Token, endpoint.WithQuery(p.path, queryOf(values)))

	p.mu.Lock()
	if gen != p.gen {
		p.mu.Unlock()
		log.Debug("Discarding superseded officer report")
		return
	}
	if err != nil || report == nil {
		if p.report == nil {
			p.notFound = true
		}
		p.mu.Unlock()
		log.WithError(err).Warn("Failed to fetch officer report")
		p.notify(ctx, models.ErrorNotification("Could not load patrolling officer report."))
		return
	}
	p.report = report
	p.notFound = false
	p.filters = f
	p.mu.Unlock()

	p.incidents.Preset(values)
	p.incidents.Seed(report.Incidents)
	log.Info("Officer report loaded")
}

// Move листает таблицу инцидентов по ссылкам next/previous
func (p *OfficerReportPage) Move(ctx context.Context, direction string) (*OfficerReportView, error) {
	_ = movePage(ctx, p.incidents, PageMove{Direction: direction, Page: 1})
	return p.view(), nil
}

func (p *OfficerReportPage) view() *OfficerReportView {
	incidents := p.incidents.Snapshot()
	now := p.now()

	p.mu.Lock()
	defer p.mu.Unlock()
	v := &OfficerReportView{
		Filters:          p.filters,
		Incidents:        incidents,
		PerformanceYears: recentYears(now, 5),
		AvailableYears:   []string{},
	}
	if p.report == nil {
		if p.notFound {
			v.Message = officerNotFound
		}
		return v
	}

	report := *p.report
	report.Incidents = nil
	v.Found = true
	v.Report = &report
	v.Name = report.Name()
	v.SiteVisit = models.ParsePercent(report.SiteVisitAccuracy)
	v.AverageResponseTime = report.AverageResponseTime
	if v.AverageResponseTime == "" {
		v.AverageResponseTime = "0 mins"
	}
	v.AvailableYears = incidentYears(incidents.Rows, now, true)
	return v
}
