package models

// AssignmentStatus - статус назначения персонала на объект
type AssignmentStatus string

const (
	SiteAssigned   AssignmentStatus = "Assigned"
	SiteUnassigned AssignmentStatus = "Unassigned"
)

type Site struct {
	ID                        int                 `json:"id" validate:"required"`
	TBSiteID                  string              `json:"tb_site_id"`
	OrgSiteID                 string              `json:"org_site_id"`
	SiteName                  string              `json:"site_name"`
	City                      string              `json:"city"`
	Region                    string              `json:"region"`
	TotalGuardsRequested      int                 `json:"total_guards_requested"`
	GeofencePerimeter         *int                `json:"geofence_perimeter"`
	PersonnelAssignmentStatus AssignmentStatus    `json:"personnel_assignment_status"`
	TotalIncidentsCount       int                 `json:"total_incidents_count"`
	ResolvedIncidentsCount    int                 `json:"resolved_incidents_count"`
	PatrolOfficerDetails      []PatrollingOfficer `json:"patrol_officer_details,omitempty"`
	GuardDetails              []Guard             `json:"guard_details,omitempty"`
}

// AssignPersonnelRequest - тело POST .../sites/{id}/assign_personnel/
type AssignPersonnelRequest struct {
	PatrolOfficerID   int   `json:"patrol_officer_id"`
	GuardIDs          []int `json:"guard_ids"`
	GeofencePerimeter *int  `json:"geofence_perimeter,omitempty"`
}

type AssignPersonnelResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}
