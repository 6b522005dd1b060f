package endpoint

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"regions", Regions(3), "/regions/?country=3"},
		{"cities", Cities(3, "12"), "/cities/?country=3&region=12"},
		{"sites", SitesList("AG-1"), "/agency/AG-1/sites/list/"},
		{"officers", PatrolOfficers("AG-1"), "/agency/AG-1/patrol_officers/list/"},
		{"guards", UnassignedGuards("AG-1"), "/agency/AG-1/unassigned_guards/list/"},
		{"assign", AssignPersonnel("AG-1", 42), "/agency/AG-1/sites/42/assign_personnel/"},
		{"officer report", OfficerReport("AG-1", 7), "/agency/AG-1/patrol_officer/7/"},
		{"agency report", AgencyReport("TC", 5), "/orgs/TC/security-agencies/5/"},
		{"incidents", OrgIncidents("TC"), "/orgs/TC/incidents/list/"},
		{"agency dashboard", AgencyDashboard("AG-1"), "/agency/AG-1/dashboard/"},
		{"towerco dashboard", TowercoDashboard("TC"), "/orgs/TC/dashboard/"},
		{"escaped code", SitesList("a/b"), "/agency/a%2Fb/sites/list/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestWithQuery(t *testing.T) {
	assert.Equal(t, "/x/", WithQuery("/x/", nil))
	assert.Equal(t, "/x/?a=1&b=two+words", WithQuery("/x/", url.Values{"b": {"two words"}, "a": {"1"}}))
}
