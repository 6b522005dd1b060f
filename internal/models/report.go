package models

// OfficerReport - ответ GET /agency/{code}/patrol_officer/{id}/
type OfficerReport struct {
	ID                  int             `json:"id" validate:"required"`
	EmployeeID          string          `json:"employee_id"`
	ProfilePicture      *string         `json:"profile_picture"`
	FirstName           string          `json:"first_name"`
	LastName            string          `json:"last_name"`
	Phone               string          `json:"phone"`
	Email               string          `json:"email"`
	TotalGuards         int             `json:"total_guards"`
	TotalSites          int             `json:"total_sites"`
	TotalIncidents      int             `json:"total_incidents"`
	AverageResponseTime string          `json:"average_response_time"`
	SiteVisitAccuracy   string          `json:"site_visit_accuracy"`
	AssignedSites       []OfficerSite   `json:"assigned_sites" validate:"omitempty,dive"`
	Incidents           *Page[Incident] `json:"incidents"`
}

func (r OfficerReport) Name() string {
	return fullName(r.FirstName, r.LastName)
}

type OfficerSite struct {
	ID                int     `json:"id" validate:"required"`
	TBSiteID          string  `json:"tb_site_id"`
	OrgSiteID         string  `json:"org_site_id"`
	SiteName          string  `json:"site_name"`
	Address           string  `json:"address"`
	TotalIncidents    int     `json:"total_incidents"`
	ResolvedIncidents int     `json:"resolved_incidents"`
	GuardsCount       int     `json:"guards_count"`
	Guards            []Guard `json:"guards" validate:"omitempty,dive"`
}

// OfficerIncidents - ответ при переходе по ссылке пагинации инцидентов офицера
type OfficerIncidents struct {
	Incidents *Page[Incident] `json:"incidents"`
}

// AgencyReportEnvelope - ответ GET /orgs/{code}/security-agencies/{id}/
type AgencyReportEnvelope struct {
	Data *AgencyReport `json:"data"`
}

type AgencyReport struct {
	ID                     int                       `json:"id" validate:"required"`
	SubconID               string                    `json:"subcon_id"`
	Name                   string                    `json:"name" validate:"required"`
	Logo                   *string                   `json:"logo,omitempty"`
	ContactPerson          string                    `json:"contact_person"`
	Email                  string                    `json:"email"`
	Phone                  string                    `json:"phone"`
	Region                 string                    `json:"region"`
	City                   string                    `json:"city"`
	RegisteredAddressLine1 string                    `json:"registered_address_line1"`
	AssignedSitesCount     int                       `json:"assigned_sites_count"`
	TotalIncidentsCount    int                       `json:"total_incidents_count"`
	ResolvedIncidentsCount int                       `json:"resolved_incidents_count"`
	Performance            *AgencyPerformance        `json:"performance"`
	AssignedSites          *Page[AgencyAssignedSite] `json:"assigned_sites"`
	Incidents              *Page[Incident]           `json:"incidents"`
}

// AgencyPerformance - метрики агентства; любое поле может прийти null
type AgencyPerformance struct {
	FiltersApplied       string   `json:"filters_applied"`
	OverallPerformance   *float64 `json:"overall_performance"`
	IncidentResolution   *float64 `json:"incident_resolution"`
	SiteVisitAccuracy    *float64 `json:"site_visit_accuracy"`
	GuardCheckinAccuracy *float64 `json:"guard_checkin_accuracy"`
	SelfieAccuracy       *float64 `json:"selfie_accuracy"`
}

type AgencyAssignedSite struct {
	ID                     int    `json:"id" validate:"required"`
	TBSiteID               string `json:"tb_site_id"`
	OrgSiteID              string `json:"org_site_id"`
	SiteName               string `json:"site_name"`
	City                   string `json:"city"`
	Region                 string `json:"region"`
	AssignedOn             string `json:"assigned_on"`
	NumberOfGuards         int    `json:"number_of_guards"`
	TotalIncidentsCount    int    `json:"total_incidents_count"`
	ResolvedIncidentsCount int    `json:"resolved_incidents_count"`
}

// AgencyAssignedSites - ответ при переходе по ссылке пагинации объектов агентства
type AgencyAssignedSites struct {
	AssignedSites *Page[AgencyAssignedSite] `json:"assigned_sites"`
}
