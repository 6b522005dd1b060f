package models

// AgencyCounts - счетчики домашней страницы агентства
type AgencyCounts struct {
	TotalAssignedSitesCount   int `json:"total_assigned_sites_count"`
	TotalUnassignedSitesCount int `json:"total_unassigned_sites_count"`
	TotalPatrolOfficersCount  int `json:"total_patrol_officers_count"`
	TotalGuardsCount          int `json:"total_guards_count"`
	SOSCount                  int `json:"sos_count"`
	ActiveIncidentsCount      int `json:"active_incidents_count"`
	UnderReviewIncidentsCount int `json:"under_review_incidents_count"`
	ResolvedIncidentsCount    int `json:"resolved_incidents_count"`
}

// TowercoCounts - счетчики домашней страницы towerco
type TowercoCounts struct {
	ActiveIncidentsCount int `json:"active_incidents_count"`
	TotalGuardsCount     int `json:"total_guards_count"`
	TotalSitesCount      int `json:"total_sites_count"`
	TotalAgenciesCount   int `json:"total_agencies_count"`
}

// Card - карточка дашборда со ссылкой на список
type Card struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Count       int    `json:"count"`
	Description string `json:"description,omitempty"`
	Href        string `json:"href"`
}

// Module - пункт переключателя модулей
type Module struct {
	Name    string `json:"name"`
	Key     string `json:"key"`
	Href    string `json:"href"`
	Enabled bool   `json:"enabled"`
	Active  bool   `json:"active"`
}
