package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/fortiq_portal/internal/endpoint"
	"github.com/shenikar/fortiq_portal/internal/models"
	"github.com/shenikar/fortiq_portal/internal/service"
	"github.com/shenikar/fortiq_portal/pkg/fetcher"
)

// APIRepository ходит в удаленный REST API, единственный источник данных портала
type APIRepository struct {
	client *fetcher.Client
}

func NewAPIRepository(client *fetcher.Client) service.API {
	return &APIRepository{client: client}
}

func (r *APIRepository) Regions(ctx context.Context, token string, countryID int) ([]models.Region, error) {
	resp, err := fetcher.Get[models.RegionList](ctx, r.client, endpoint.Regions(countryID), token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch regions: %w", err)
	}
	if resp == nil {
		return nil, nil
	}
	return resp.Regions, nil
}

func (r *APIRepository) Cities(ctx context.Context, token string, countryID int, regionID string) ([]models.City, error) {
	resp, err := fetcher.Get[models.CityList](ctx, r.client, endpoint.Cities(countryID, regionID), token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cities: %w", err)
	}
	if resp == nil {
		return nil, nil
	}
	return resp.Cities, nil
}

// Sites загружает страницу объектов по пути списка или по ссылке пагинации
func (r *APIRepository) Sites(ctx context.Context, token, url string) (*models.Page[models.Site], error) {
	page, err := fetcher.Get[models.Page[models.Site]](ctx, r.client, url, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sites: %w", err)
	}
	return page, nil
}

func (r *APIRepository) PatrolOfficers(ctx context.Context, token, orgCode string) ([]models.PatrollingOfficer, error) {
	page, err := fetcher.Get[models.Page[models.PatrollingOfficer]](ctx, r.client, endpoint.PatrolOfficers(orgCode), token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patrol officers: %w", err)
	}
	if page == nil {
		return nil, nil
	}
	return page.Results, nil
}

func (r *APIRepository) UnassignedGuards(ctx context.Context, token, orgCode string) ([]models.Guard, error) {
	page, err := fetcher.Get[models.Page[models.Guard]](ctx, r.client, endpoint.UnassignedGuards(orgCode), token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unassigned guards: %w", err)
	}
	if page == nil {
		return nil, nil
	}
	return page.Results, nil
}

func (r *APIRepository) AssignPersonnel(ctx context.Context, token, orgCode string, siteID int, req models.AssignPersonnelRequest) (*models.AssignPersonnelResponse, error) {
	resp, err := fetcher.Post[models.AssignPersonnelResponse](ctx, r.client, endpoint.AssignPersonnel(orgCode, siteID), token, req)
	if err != nil {
		return nil, fmt.Errorf("failed to assign personnel to site %d: %w", siteID, err)
	}
	return resp, nil
}

func (r *APIRepository) OfficerReport(ctx context.Context, token, url string) (*models.OfficerReport, error) {
	report, err := fetcher.Get[models.OfficerReport](ctx, r.client, url, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch officer report: %w", err)
	}
	return report, nil
}

// OfficerIncidents извлекает таблицу инцидентов из ответа отчета офицера
func (r *APIRepository) OfficerIncidents(ctx context.Context, token, url string) (*models.Page[models.Incident], error) {
	resp, err := fetcher.Get[models.OfficerIncidents](ctx, r.client, url, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch officer incidents: %w", err)
	}
	if resp == nil {
		return nil, nil
	}
	return resp.Incidents, nil
}

// AgencyReport разворачивает конверт {data: ...}; пустой data означает, что отчета нет
func (r *APIRepository) AgencyReport(ctx context.Context, token, url string) (*models.AgencyReport, error) {
	resp, err := fetcher.Get[models.AgencyReportEnvelope](ctx, r.client, url, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agency report: %w", err)
	}
	if resp == nil {
		return nil, nil
	}
	return resp.Data, nil
}

func (r *APIRepository) AgencyAssignedSites(ctx context.Context, token, url string) (*models.Page[models.AgencyAssignedSite], error) {
	resp, err := fetcher.Get[models.AgencyAssignedSites](ctx, r.client, url, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agency sites: %w", err)
	}
	if resp == nil {
		return nil, nil
	}
	return resp.AssignedSites, nil
}

func (r *APIRepository) Incidents(ctx context.Context, token, url string) (*models.Page[models.Incident], error) {
	page, err := fetcher.Get[models.Page[models.Incident]](ctx, r.client, url, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch incidents: %w", err)
	}
	return page, nil
}

func (r *APIRepository) AgencyDashboard(ctx context.Context, token, orgCode string) (*models.AgencyCounts, error) {
	counts, err := fetcher.Get[models.AgencyCounts](ctx, r.client, endpoint.AgencyDashboard(orgCode), token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agency dashboard: %w", err)
	}
	return counts, nil
}

func (r *APIRepository) TowercoDashboard(ctx context.Context, token, orgCode string) (*models.TowercoCounts, error) {
	counts, err := fetcher.Get[models.TowercoCounts](ctx, r.client, endpoint.TowercoDashboard(orgCode), token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch towerco dashboard: %w", err)
	}
	return counts, nil
}
