package v1

import (
	"github.com/shenikar/fortiq_portal/internal/models"
)

// CreateSessionRequest DTO для создания сессии после входа
// @Description DTO для создания сессии после входа
type CreateSessionRequest struct {
	Token        string               `json:"token" validate:"required"`
	Role         string               `json:"role" validate:"required,max=8"`
	User         models.User          `json:"user"`
	Organization *models.Organization `json:"organization,omitempty"`
}

// SessionResponse DTO для ответа с профилем сессии
// @Description DTO для ответа с профилем сессии
type SessionResponse struct {
	ID           string               `json:"id"`
	Role         string               `json:"role"`
	Portal       string               `json:"portal"`
	HomePath     string               `json:"home_path"`
	User         models.User          `json:"user"`
	Organization *models.Organization `json:"organization,omitempty"`
}

// SitesFiltersRequest DTO для изменения фильтров вкладки объектов
// @Description Отсутствующее поле оставляет фильтр без изменений
type SitesFiltersRequest struct {
	Search        *string `json:"search,omitempty" validate:"omitempty,max=255"`
	PatrolOfficer *string `json:"patrol_officer,omitempty"`
	City          *string `json:"city,omitempty"`
}

// RegionRequest DTO для выбора региона
// @Description DTO для выбора региона
type RegionRequest struct {
	Region string `json:"region" validate:"required"`
}

// PageMoveRequest DTO для перехода по страницам списка объектов
// @Description Либо direction, либо page
type PageMoveRequest struct {
	Direction string `json:"direction,omitempty" validate:"omitempty,oneof=next previous"`
	Page      int    `json:"page,omitempty" validate:"omitempty,gte=1"`
}

// DirectionRequest DTO для перехода на следующую или предыдущую страницу
// @Description DTO для перехода на следующую или предыдущую страницу
type DirectionRequest struct {
	Direction string `json:"direction" validate:"required,oneof=next previous"`
}

// OfficerRequest DTO для выбора патрульного офицера в черновике
// @Description DTO для выбора патрульного офицера в черновике
type OfficerRequest struct {
	OfficerID int `json:"officer_id" validate:"required,gt=0"`
}

// GeofenceRequest DTO для периметра геозоны; пустая строка снимает значение
// @Description DTO для периметра геозоны
type GeofenceRequest struct {
	GeofencePerimeter string `json:"geofence_perimeter" validate:"max=16"`
}

// IncidentFiltersRequest DTO для фильтров таблицы инцидентов
// @Description Значение "all" или пустое поле снимает фильтр
type IncidentFiltersRequest struct {
	Year   string `json:"year,omitempty" form:"year" validate:"omitempty,max=4"`
	Month  string `json:"month,omitempty" form:"month" validate:"omitempty,max=3"`
	Status string `json:"status,omitempty" form:"status"`
}

// PerformanceFiltersRequest DTO для фильтров показателей агентства
// @Description DTO для фильтров показателей агентства
type PerformanceFiltersRequest struct {
	Year  string `form:"year" validate:"omitempty,max=4"`
	Month string `form:"month" validate:"omitempty,max=3"`
}

// ModulesResponse DTO для переключателя модулей
// @Description DTO для переключателя модулей
type ModulesResponse struct {
	Modules []models.Module `json:"modules"`
}

// NotificationsResponse DTO для накопленных уведомлений
// @Description DTO для накопленных уведомлений
type NotificationsResponse struct {
	Notifications []models.Notification `json:"notifications"`
}
