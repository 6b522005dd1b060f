package models

import "strings"

type PatrollingOfficer struct {
	ID                 int    `json:"id" validate:"required"`
	EmployeeID         string `json:"employee_id"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	ProfilePicture     string `json:"profile_picture,omitempty"`
	City               string `json:"city"`
	SitesAssignedCount int    `json:"sites_assigned_count"`
	IncidentsCount     int    `json:"incidents_count"`
}

// Name возвращает "Имя Фамилия" без хвостовых пробелов, если фамилии нет
func (o PatrollingOfficer) Name() string {
	return fullName(o.FirstName, o.LastName)
}

type Guard struct {
	ID               int    `json:"id" validate:"required"`
	EmployeeID       string `json:"employee_id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone"`
	City             string `json:"city,omitempty"`
	AssignmentStatus string `json:"assignment_status,omitempty"`
}

func (g Guard) Name() string {
	return fullName(g.FirstName, g.LastName)
}

func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
