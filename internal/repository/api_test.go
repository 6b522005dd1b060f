package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shenikar/fortiq_portal/internal/models"
	"github.com/shenikar/fortiq_portal/internal/service"
	"github.com/shenikar/fortiq_portal/pkg/fetcher"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAPI поднимает фейковый API, который отвечает по пути с query
func newTestAPI(t *testing.T, routes map[string]string) (service.API, *[]*http.Request) {
	t.Helper()
	var requests []*http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r)
		body, ok := routes[r.URL.RequestURI()]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Not found."}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewAPIRepository(fetcher.New(srv.URL+"/api", logger)), &requests
}

func TestAPIRepository_RegionsAndCities(t *testing.T) {
	api, requests := newTestAPI(t, map[string]string{
		"/api/regions/?country=1":          `{"regions":[{"id":10,"name":"Punjab"}]}`,
		"/api/cities/?country=1&region=10": `{"cities":[{"id":5,"name":"Lahore"}]}`,
	})
	ctx := context.Background()

	regions, err := api.Regions(ctx, "tok", 1)
	require.NoError(t, err)
	cities, err := api.Cities(ctx, "tok", 1, "10")
	require.NoError(t, err)

	assert.Equal(t, []models.Region{{ID: 10, Name: "Punjab"}}, regions)
	assert.Equal(t, []models.City{{ID: 5, Name: "Lahore"}}, cities)
	assert.Equal(t, "Token tok", (*requests)[0].Header.Get("Authorization"))
}

func TestAPIRepository_PatrolOfficersReadsResults(t *testing.T) {
	api, _ := newTestAPI(t, map[string]string{
		"/api/agency/ACME/patrol_officers/list/": `{"results":[{"id":7,"first_name":"Ali","last_name":"","city":"Lahore"}]}`,
	})

	officers, err := api.PatrolOfficers(context.Background(), "tok", "ACME")

	require.NoError(t, err)
	require.Len(t, officers, 1)
	assert.Equal(t, "Ali", officers[0].Name())
}

func TestAPIRepository_SitesFollowsAbsoluteLink(t *testing.T) {
	var srvURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/agency/ACME/sites/list/?page=2", r.URL.RequestURI())
		_, _ = w.Write([]byte(`{"count":11,"next":null,"previous":"` + srvURL + `/api/agency/ACME/sites/list/","results":[{"id":11,"site_name":"Tower 11"}]}`))
	}))
	defer srv.Close()
	srvURL = srv.URL
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	api := NewAPIRepository(fetcher.New("http://unused.invalid/api", logger, fetcher.WithHTTPClient(srv.Client())))

	page, err := api.Sites(context.Background(), "tok", srv.URL+"/api/agency/ACME/sites/list/?page=2")

	require.NoError(t, err)
	assert.Equal(t, 11, page.Count)
	assert.True(t, page.HasPrevious())
	assert.False(t, page.HasNext())
	assert.Equal(t, "Tower 11", page.Results[0].SiteName)
}

func TestAPIRepository_AssignPersonnel(t *testing.T) {
	var got models.AssignPersonnelRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/agency/ACME/sites/3/assign_personnel/", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"patrol_officer_id":7,"guard_ids":[101,102]}`, string(body))
		_ = json.Unmarshal(body, &got)
		_, _ = w.Write([]byte(`{"message":"Personnel assigned."}`))
	}))
	defer srv.Close()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	api := NewAPIRepository(fetcher.New(srv.URL, logger))

	resp, err := api.AssignPersonnel(context.Background(), "tok", "ACME", 3, models.AssignPersonnelRequest{PatrolOfficerID: 7, GuardIDs: []int{101, 102}})

	require.NoError(t, err)
	assert.Equal(t, "Personnel assigned.", resp.Message)
	assert.Equal(t, 7, got.PatrolOfficerID)
}

func TestAPIRepository_AssignPersonnelErrorKeepsDetail(t *testing.T) {
	api, _ := newTestAPI(t, nil)

	_, err := api.AssignPersonnel(context.Background(), "tok", "ACME", 3, models.AssignPersonnelRequest{})

	require.Error(t, err)
	assert.Equal(t, "Not found.", fetcher.Detail(err))
	assert.Equal(t, http.StatusNotFound, fetcher.StatusCode(err))
}

func TestAPIRepository_OfficerIncidentsFromReport(t *testing.T) {
	api, _ := newTestAPI(t, map[string]string{
		"/api/agency/ACME/patrol_officer/7/?year=2024": `{"id":7,"first_name":"Ali","incidents":{"count":1,"next":null,"previous":null,"results":[{"id":1,"incident_id":"INC-1","incident_time":"2024-03-01T10:00:00Z","incident_status":"Active"}]}}`,
	})

	page, err := api.OfficerIncidents(context.Background(), "tok", "/agency/ACME/patrol_officer/7/?year=2024")

	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, models.IncidentActive, page.Results[0].Status)
}

func TestAPIRepository_AgencyReportEnvelope(t *testing.T) {
	api, _ := newTestAPI(t, map[string]string{
		"/api/orgs/TC/security-agencies/5/":        `{"data":{"id":5,"name":"Shield Co","performance":{"overall_performance":91.5,"selfie_accuracy":null},"assigned_sites":{"count":0,"next":null,"previous":null,"results":[]}}}`,
		"/api/orgs/TC/security-agencies/6/":        `{"data":null}`,
		"/api/orgs/TC/security-agencies/7/":        `{"data":{"id":7}}`,
		"/api/orgs/TC/security-agencies/5/?page=2": `{"assigned_sites":{"count":1,"next":null,"previous":null,"results":[{"id":9,"site_name":"Tower 9"}]}}`,
	})
	ctx := context.Background()

	report, err := api.AgencyReport(ctx, "tok", "/orgs/TC/security-agencies/5/")
	require.NoError(t, err)
	assert.Equal(t, "Shield Co", report.Name)
	require.NotNil(t, report.Performance.OverallPerformance)
	assert.Nil(t, report.Performance.SelfieAccuracy)

	missing, err := api.AgencyReport(ctx, "tok", "/orgs/TC/security-agencies/6/")
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Отчет без обязательного имени не проходит проверку схемы
	_, err = api.AgencyReport(ctx, "tok", "/orgs/TC/security-agencies/7/")
	var decodeErr *fetcher.DecodeError
	assert.ErrorAs(t, err, &decodeErr)

	sites, err := api.AgencyAssignedSites(ctx, "tok", "/orgs/TC/security-agencies/5/?page=2")
	require.NoError(t, err)
	assert.Equal(t, "Tower 9", sites.Results[0].SiteName)
}

func TestAPIRepository_Dashboards(t *testing.T) {
	api, _ := newTestAPI(t, map[string]string{
		"/api/agency/ACME/dashboard/": `{"total_assigned_sites_count":4,"sos_count":1}`,
		"/api/orgs/TC/dashboard/":     `{"total_agencies_count":6}`,
	})
	ctx := context.Background()

	agency, err := api.AgencyDashboard(ctx, "tok", "ACME")
	require.NoError(t, err)
	towerco, err := api.TowercoDashboard(ctx, "tok", "TC")
	require.NoError(t, err)

	assert.Equal(t, 4, agency.TotalAssignedSitesCount)
	assert.Equal(t, 1, agency.SOSCount)
	assert.Equal(t, 6, towerco.TotalAgenciesCount)
}
