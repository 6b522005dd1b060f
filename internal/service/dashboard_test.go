package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/fortiq_portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAgencyHome_BuildsCards(t *testing.T) {
	f := newFixture(t)
	f.api.EXPECT().AgencyDashboard(gomock.Any(), testToken, testOrg).Return(&models.AgencyCounts{
		TotalAssignedSitesCount:   4,
		TotalUnassignedSitesCount: 2,
		SOSCount:                  1,
		UnderReviewIncidentsCount: 3,
	}, nil)

	home, err := NewDashboardService(f.api, f.logger).AgencyHome(context.Background(), agencySession())

	require.NoError(t, err)
	require.Len(t, home.Cards, 4)
	assert.Equal(t, models.Card{Key: "assigned_sites", Label: "Assigned Sites", Count: 4, Description: "Sites with assigned personnel", Href: "/agency/sites?tab=assigned"}, home.Cards[0])
	require.Len(t, home.Incidents, 4)
	assert.Equal(t, "SOS", home.Incidents[0].Label)
	assert.Equal(t, 1, home.Incidents[0].Count)
	assert.Equal(t, "/agency/incidents?status=under-review", home.Incidents[2].Href)
	assert.Equal(t, 3, home.Incidents[2].Count)
}

func TestTowercoHome_Failure(t *testing.T) {
	f := newFixture(t)
	f.api.EXPECT().TowercoDashboard(gomock.Any(), testToken, "TC").Return(nil, errors.New("boom"))

	_, err := NewDashboardService(f.api, f.logger).TowercoHome(context.Background(), towercoSession())

	assert.Error(t, err)
}

func TestTowercoHome_BuildsCards(t *testing.T) {
	f := newFixture(t)
	f.api.EXPECT().TowercoDashboard(gomock.Any(), testToken, "TC").Return(&models.TowercoCounts{TotalAgenciesCount: 6}, nil)

	home, err := NewDashboardService(f.api, f.logger).TowercoHome(context.Background(), towercoSession())

	require.NoError(t, err)
	assert.Equal(t, 6, home.Cards[3].Count)
}

func TestModules(t *testing.T) {
	f := newFixture(t)
	svc := NewDashboardService(f.api, f.logger)

	modules := svc.Modules(agencySession(), "/agency/sites")

	require.Len(t, modules, 6)
	byKey := make(map[string]models.Module, len(modules))
	for _, m := range modules {
		byKey[m.Key] = m
	}
	assert.Equal(t, models.Module{Name: "Fortiq", Key: "security", Href: "/agency/home", Enabled: true, Active: true}, byKey["security"])
	assert.True(t, byKey["energy"].Enabled)
	assert.False(t, byKey["realestate"].Enabled)
	assert.Equal(t, "#", byKey["realestate"].Href)

	towerco := svc.Modules(towercoSession(), "/")
	assert.Equal(t, "/towerco/home", towerco[1].Href)
	assert.False(t, towerco[1].Active)
}
