package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/shenikar/fortiq_portal/internal/listview"
	"github.com/shenikar/fortiq_portal/internal/models"
	"github.com/shenikar/fortiq_portal/pkg/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const officerPath = "/agency/ACME/patrol_officer/7/"

func incidentAt(id, year int) models.Incident {
	return models.Incident{
		ID:           id,
		IncidentID:   "INC-" + strconv.Itoa(id),
		IncidentTime: models.Timestamp{Time: time.Date(year, time.March, 1, 10, 0, 0, 0, time.UTC)},
		Status:       models.IncidentActive,
	}
}

func officerReport() *models.OfficerReport {
	return &models.OfficerReport{
		ID:                7,
		FirstName:         "Ali",
		SiteVisitAccuracy: "87.6",
		Incidents: &models.Page[models.Incident]{
			Count:   2,
			Results: []models.Incident{incidentAt(1, 2023), incidentAt(2, 2021)},
		},
	}
}

func newTestReportService(f *fixture) ReportService {
	return NewReportService(f.api, f.notifier, f.workspaces, f.logger)
}

func TestOfficerReport_LoadsOnceAndDerivesMetrics(t *testing.T) {
	// Подготовка
	f := newFixture(t)
	f.captureNotifications()
	ctx := context.Background()
	svc := newTestReportService(f)
	f.api.EXPECT().OfficerReport(gomock.Any(), testToken, officerPath).Return(officerReport(), nil).Times(1)

	// Действие
	view, err := svc.OfficerReport(ctx, agencySession(), 7, ReportFilters{})
	require.NoError(t, err)
	_, err = svc.OfficerReport(ctx, agencySession(), 7, ReportFilters{Status: "all"})
	require.NoError(t, err)

	// Проверки
	assert.True(t, view.Found)
	assert.Equal(t, "Ali", view.Name)
	assert.Equal(t, models.Percent{Value: 88, Remaining: 12, Band: models.BandFair}, view.SiteVisit)
	assert.Equal(t, "0 mins", view.AverageResponseTime)
	assert.Nil(t, view.Report.Incidents)
	assert.Equal(t, listview.StatusLoaded, view.Incidents.Status)
	assert.Len(t, view.Incidents.Rows, 2)

	current := strconv.Itoa(time.Now().Year())
	assert.Equal(t, current, view.AvailableYears[0])
	assert.Contains(t, view.AvailableYears, "2023")
	assert.Contains(t, view.AvailableYears, "2021")
	assert.Len(t, view.PerformanceYears, 5)
	assert.Equal(t, current, view.PerformanceYears[0])
}

func TestOfficerReport_FilterChangeRefetchesIncidentsOnly(t *testing.T) {
	f := newFixture(t)
	f.captureNotifications()
	ctx := context.Background()
	svc := newTestReportService(f)
	f.api.EXPECT().OfficerReport(gomock.Any(), testToken, officerPath).Return(officerReport(), nil)
	f.api.EXPECT().
		OfficerIncidents(gomock.Any(), testToken, officerPath+"?incident_status=Under+Review&year=2023").
		Return(&models.Page[models.Incident]{Count: 1, Results: []models.Incident{incidentAt(1, 2023)}}, nil)

	_, err := svc.OfficerReport(ctx, agencySession(), 7, ReportFilters{})
	require.NoError(t, err)
	view, err := svc.OfficerReport(ctx, agencySession(), 7, ReportFilters{Year: "2023", Status: "under-review"})

	require.NoError(t, err)
	assert.Len(t, view.Incidents.Rows, 1)
	assert.Equal(t, "Ali", view.Name)
	assert.Equal(t, ReportFilters{Year: "2023", Status: "under-review"}, view.Filters)
}

func TestOfficerReport_InitialFiltersAreSentWithReport(t *testing.T) {
	f := newFixture(t)
	f.captureNotifications()
	f.api.EXPECT().OfficerReport(gomock.Any(), testToken, officerPath+"?incident_status=Resolved&month=4").Return(officerReport(), nil)

	view, err := newTestReportService(f).OfficerReport(context.Background(), agencySession(), 7, ReportFilters{Month: "4", Status: "resolved"})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"month": "4", "incident_status": "Resolved"}, view.Incidents.Filters)
}

func TestOfficerReport_NotFound(t *testing.T) {
	f := newFixture(t)
	f.captureNotifications()
	f.api.EXPECT().OfficerReport(gomock.Any(), testToken, officerPath).Return(nil, &fetcher.HTTPError{StatusCode: 404})

	view, err := newTestReportService(f).OfficerReport(context.Background(), agencySession(), 7, ReportFilters{})

	require.NoError(t, err)
	assert.False(t, view.Found)
	assert.Equal(t, "Patrolling Officer not found.", view.Message)
	notes := f.notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, "Could not load patrolling officer report.", notes[0].Description)
}

func TestOfficerReport_InvalidFilter(t *testing.T) {
	f := newFixture(t)

	_, err := newTestReportService(f).OfficerReport(context.Background(), agencySession(), 7, ReportFilters{Status: "closed"})

	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestOfficerReport_PaginationFailureKeepsRows(t *testing.T) {
	f := newFixture(t)
	f.captureNotifications()
	ctx := context.Background()
	svc := newTestReportService(f)
	report := officerReport()
	next := "https://api.example.com" + officerPath + "?page=2"
	report.Incidents.Next = &next
	f.api.EXPECT().OfficerReport(gomock.Any(), testToken, officerPath).Return(report, nil)
	f.api.EXPECT().OfficerIncidents(gomock.Any(), testToken, next).Return(nil, errors.New("timeout"))

	_, err := svc.OfficerReport(ctx, agencySession(), 7, ReportFilters{})
	require.NoError(t, err)
	view, err := svc.MoveOfficerIncidents(ctx, agencySession(), 7, MoveNext)

	require.NoError(t, err)
	assert.Len(t, view.Incidents.Rows, 2)
	assert.Equal(t, listview.StatusLoaded, view.Incidents.Status)
	notes := f.notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, "Failed to load next page of incidents.", notes[0].Description)
}

const (
	agencyPath    = "/orgs/TC/security-agencies/5/"
	incidentsPath = "/orgs/TC/incidents/list/?agency_name=Shield+Co"
)

func agencyReport() *models.AgencyReport {
	next := "https://api.example.com" + agencyPath + "?page=2"
	return &models.AgencyReport{
		ID:   5,
		Name: "Shield Co",
		Performance: &models.AgencyPerformance{
			OverallPerformance: floatPtr(96.4),
			SiteVisitAccuracy:  floatPtr(70),
		},
		AssignedSites: &models.Page[models.AgencyAssignedSite]{Count: 11, Next: &next, Results: []models.AgencyAssignedSite{{ID: 1}}},
		Incidents:     &models.Page[models.Incident]{Count: 1, Results: []models.Incident{incidentAt(3, 2022)}},
	}
}

func TestAgencyReport_LoadsReportAndIncidents(t *testing.T) {
	f := newFixture(t)
	f.captureNotifications()
	ctx := context.Background()
	svc := newTestReportService(f)
	f.api.EXPECT().AgencyReport(gomock.Any(), testToken, agencyPath+"?year=2024").Return(agencyReport(), nil).Times(1)
	f.api.EXPECT().Incidents(gomock.Any(), testToken, incidentsPath).
		Return(&models.Page[models.Incident]{Count: 2, Results: []models.Incident{incidentAt(3, 2022), incidentAt(4, 2024)}}, nil)

	view, err := svc.AgencyReport(ctx, towercoSession(), 5, PerformanceFilters{Year: "2024"})
	require.NoError(t, err)
	again, err := svc.AgencyReport(ctx, towercoSession(), 5, PerformanceFilters{Year: "2024", Month: "all"})
	require.NoError(t, err)

	assert.True(t, view.Found)
	assert.Equal(t, "Shield Co", view.Report.Name)
	require.NotNil(t, view.Performance)
	assert.Equal(t, models.Percent{Value: 96, Remaining: 4, Band: models.BandGood}, view.Performance.Overall)
	assert.Equal(t, models.Percent{Value: 0, Remaining: 100, Band: models.BandPoor}, view.Performance.IncidentResolution)
	assert.Equal(t, models.BandFair, view.Performance.SiteVisit.Band)
	assert.True(t, view.AssignedSites.HasNext)
	assert.Len(t, view.Incidents.Rows, 2)
	assert.Equal(t, []string{"2022"}, view.IncidentYears)
	assert.Equal(t, view.Incidents.Rows, again.Incidents.Rows)
}

func TestAgencyReport_IncidentFiltersAndPagination(t *testing.T) {
	f := newFixture(t)
	f.captureNotifications()
	ctx := context.Background()
	svc := newTestReportService(f)
	report := agencyReport()
	f.api.EXPECT().AgencyReport(gomock.Any(), testToken, agencyPath).Return(report, nil)
	f.api.EXPECT().Incidents(gomock.Any(), testToken, incidentsPath).Return(report.Incidents, nil)
	f.api.EXPECT().Incidents(gomock.Any(), testToken, "/orgs/TC/incidents/list/?agency_name=Shield+Co&incident_status=Resolved&month=3").
		Return(&models.Page[models.Incident]{}, nil)
	f.api.EXPECT().AgencyAssignedSites(gomock.Any(), testToken, *report.AssignedSites.Next).
		Return(nil, errors.New("timeout"))

	_, err := svc.AgencyReport(ctx, towercoSession(), 5, PerformanceFilters{})
	require.NoError(t, err)
	filtered, err := svc.SetAgencyIncidentFilters(ctx, towercoSession(), 5, ReportFilters{Month: "3", Status: "resolved"})
	require.NoError(t, err)
	moved, err := svc.MoveAgencyTable(ctx, towercoSession(), 5, TableSites, MoveNext)
	require.NoError(t, err)

	assert.Empty(t, filtered.Incidents.Rows)
	assert.Equal(t, "No incidents found for the selected filters.", filtered.Incidents.Message)
	assert.Len(t, moved.AssignedSites.Rows, 1)
	notes := f.notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, "Failed to load next page of sites.", notes[0].Description)
}

func TestAgencyReport_IncidentsFailureKeepsSeededRows(t *testing.T) {
	f := newFixture(t)
	f.captureNotifications()
	f.api.EXPECT().AgencyReport(gomock.Any(), testToken, agencyPath).Return(agencyReport(), nil)
	f.api.EXPECT().Incidents(gomock.Any(), testToken, incidentsPath).Return(nil, errors.New("boom"))

	view, err := newTestReportService(f).AgencyReport(context.Background(), towercoSession(), 5, PerformanceFilters{})

	require.NoError(t, err)
	assert.Len(t, view.Incidents.Rows, 1)
	notes := f.notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, "Failed to load incidents.", notes[0].Description)
}

func TestAgencyReport_NotFoundAndUnknownTable(t *testing.T) {
	f := newFixture(t)
	f.captureNotifications()
	ctx := context.Background()
	svc := newTestReportService(f)
	f.api.EXPECT().AgencyReport(gomock.Any(), testToken, agencyPath).Return(nil, &fetcher.HTTPError{StatusCode: 404})

	view, err := svc.AgencyReport(ctx, towercoSession(), 5, PerformanceFilters{})
	require.NoError(t, err)
	_, tableErr := svc.MoveAgencyTable(ctx, towercoSession(), 5, "guards", MoveNext)

	assert.False(t, view.Found)
	assert.Equal(t, "Agency not found.", view.Message)
	assert.Equal(t, listview.StatusIdle, view.Incidents.Status)
	assert.ErrorIs(t, tableErr, ErrUnknownTable)
}

func TestAgencyReport_InvalidMonth(t *testing.T) {
	f := newFixture(t)

	_, err := newTestReportService(f).AgencyReport(context.Background(), towercoSession(), 5, PerformanceFilters{Month: "13"})

	assert.ErrorIs(t, err, ErrInvalidFilter)
}
