package v1

import (
	"errors"

	"github.com/shenikar/fortiq_portal/internal/models"
	"github.com/shenikar/fortiq_portal/internal/service"
)

var errEmptyPageMove = errors.New("exactly one of direction or page is required")

// DTOToNewSession преобразует запрос входа в данные для сервиса сессий
func DTOToNewSession(dto CreateSessionRequest) service.NewSession {
	return service.NewSession{
		Token:        dto.Token,
		Role:         models.Role(dto.Role),
		User:         dto.User,
		Organization: dto.Organization,
	}
}

// ModelToSessionResponse преобразует сессию в DTO без токена API
func ModelToSessionResponse(session *models.Session) *SessionResponse {
	return &SessionResponse{
		ID:           session.ID,
		Role:         string(session.Role),
		Portal:       string(session.Role.Portal()),
		HomePath:     session.Role.HomePath(),
		User:         session.User,
		Organization: session.Organization(),
	}
}

func DTOToSitesFilters(dto SitesFiltersRequest) service.SitesFilters {
	return service.SitesFilters{
		Search:        dto.Search,
		PatrolOfficer: dto.PatrolOfficer,
		City:          dto.City,
	}
}

// DTOToPageMove проверяет, что задан ровно один способ перехода
func DTOToPageMove(dto PageMoveRequest) (service.PageMove, error) {
	if (dto.Direction == "") == (dto.Page == 0) {
		return service.PageMove{}, errEmptyPageMove
	}
	return service.PageMove{Direction: dto.Direction, Page: dto.Page}, nil
}

func DTOToReportFilters(dto IncidentFiltersRequest) service.ReportFilters {
	return service.ReportFilters{Year: dto.Year, Month: dto.Month, Status: dto.Status}
}

func DTOToPerformanceFilters(dto PerformanceFiltersRequest) service.PerformanceFilters {
	return service.PerformanceFilters{Year: dto.Year, Month: dto.Month}
}

// ensureNotifications возвращает пустой слайс вместо nil, чтобы в JSON был []
func ensureNotifications(list []models.Notification) []models.Notification {
	if list == nil {
		return []models.Notification{}
	}
	return list
}
