// Package endpoint собирает относительные пути удаленного API.
package endpoint

import (
	"fmt"
	"net/url"
	"strconv"
)

func Regions(countryID int) string {
	return WithQuery("/regions/", url.Values{"country": {strconv.Itoa(countryID)}})
}

func Cities(countryID int, regionID string) string {
	return WithQuery("/cities/", url.Values{
		"country": {strconv.Itoa(countryID)},
		"region":  {regionID},
	})
}

func SitesList(orgCode string) string {
	return fmt.Sprintf("/agency/%s/sites/list/", url.PathEscape(orgCode))
}

func PatrolOfficers(orgCode string) string {
	return fmt.Sprintf("/agency/%s/patrol_officers/list/", url.PathEscape(orgCode))
}

func UnassignedGuards(orgCode string) string {
	return fmt.Sprintf("/agency/%s/unassigned_guards/list/", url.PathEscape(orgCode))
}

func AssignPersonnel(orgCode string, siteID int) string {
	return fmt.Sprintf("/agency/%s/sites/%d/assign_personnel/", url.PathEscape(orgCode), siteID)
}

func OfficerReport(orgCode string, officerID int) string {
	return fmt.Sprintf("/agency/%s/patrol_officer/%d/", url.PathEscape(orgCode), officerID)
}

func AgencyReport(orgCode string, agencyID int) string {
	return fmt.Sprintf("/orgs/%s/security-agencies/%d/", url.PathEscape(orgCode), agencyID)
}

func OrgIncidents(orgCode string) string {
	return fmt.Sprintf("/orgs/%s/incidents/list/", url.PathEscape(orgCode))
}

func AgencyDashboard(orgCode string) string {
	return fmt.Sprintf("/agency/%s/dashboard/", url.PathEscape(orgCode))
}

func TowercoDashboard(orgCode string) string {
	return fmt.Sprintf("/orgs/%s/dashboard/", url.PathEscape(orgCode))
}

// WithQuery добавляет параметры к пути; пустые параметры не добавляются
func WithQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
