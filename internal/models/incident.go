package models

import (
	"fmt"
	"strings"
)

// IncidentStatus - статус инцидента в том виде, в котором его отдает API
type IncidentStatus string

const (
	IncidentActive      IncidentStatus = "Active"
	IncidentUnderReview IncidentStatus = "Under Review"
	IncidentResolved    IncidentStatus = "Resolved"
)

// ParseIncidentStatus переводит значение фильтра ("all", "active", "under-review", "resolved")
// в статус API. Для "all" и пустой строки возвращается пустой статус.
func ParseIncidentStatus(value string) (IncidentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", FilterAll:
		return "", nil
	case "active":
		return IncidentActive, nil
	case "under-review", "under review", "under_review":
		return IncidentUnderReview, nil
	case "resolved":
		return IncidentResolved, nil
	}
	return "", fmt.Errorf("unknown incident status %q", value)
}

type Incident struct {
	ID                  int            `json:"id" validate:"required"`
	IncidentID          string         `json:"incident_id"`
	TBSiteID            string         `json:"tb_site_id"`
	IncidentTime        Timestamp      `json:"incident_time"`
	Status              IncidentStatus `json:"incident_status"`
	IncidentType        string         `json:"incident_type,omitempty"`
	IncidentDescription string         `json:"incident_description,omitempty"`
	SiteName            string         `json:"site_name"`
	GuardName           string         `json:"guard_name"`
	PatrolOfficerName   string         `json:"patrol_officer_name,omitempty"`
}
