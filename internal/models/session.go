package models

import (
	"slices"
	"strings"
	"time"
)

// Role - роль пользователя, выданная API при входе
type Role string

const (
	RoleAgencyAdmin Role = "SA"
	RoleAgencyGuard Role = "SG"
	RoleTowerco     Role = "T"
	RoleOperator    Role = "O"
)

// Portal - часть портала, доступная роли
type Portal string

const (
	PortalAgency  Portal = "agency"
	PortalTowerco Portal = "towerco"
)

// Portal возвращает портал роли: SA и SG работают в портале агентства, остальные - в портале towerco
func (r Role) Portal() Portal {
	if r == RoleAgencyAdmin || r == RoleAgencyGuard {
		return PortalAgency
	}
	return PortalTowerco
}

// HomePath - домашняя страница портала роли
func (r Role) HomePath() string {
	return "/" + string(r.Portal()) + "/home"
}

type Country struct {
	ID   int    `json:"id" validate:"required"`
	Name string `json:"name"`
}

type Organization struct {
	ID                int      `json:"id"`
	Code              string   `json:"code" validate:"required"`
	Name              string   `json:"name"`
	SubscribedModules []string `json:"subscribed_modules,omitempty"`
}

type User struct {
	ID            int           `json:"id"`
	Email         string        `json:"email"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	Country       *Country      `json:"country,omitempty"`
	Organization  *Organization `json:"organization,omitempty"`
	Subcontractor *Organization `json:"subcontractor,omitempty"`
}

// Session - контекст приложения пользователя: токен, роль, профиль и организация.
// Загружается один раз при входе и удаляется при выходе.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Role      Role      `json:"role"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// Organization возвращает организацию сессии: организацию пользователя или, для агентств, субподрядчика
func (s *Session) Organization() *Organization {
	if s.User.Organization != nil {
		return s.User.Organization
	}
	return s.User.Subcontractor
}

// OrgCode - код организации, которым параметризуются URL API
func (s *Session) OrgCode() string {
	if org := s.Organization(); org != nil {
		return org.Code
	}
	return ""
}

// CountryID - страна пользователя для каскада регион/город; 0 если не задана
func (s *Session) CountryID() int {
	if s.User.Country == nil {
		return 0
	}
	return s.User.Country.ID
}

// SubscribedModules возвращает подключенные модули в нижнем регистре
func (s *Session) SubscribedModules() []string {
	org := s.Organization()
	if org == nil {
		return nil
	}
	modules := make([]string, 0, len(org.SubscribedModules))
	for _, m := range org.SubscribedModules {
		modules = append(modules, strings.ToLower(m))
	}
	return modules
}

func (s *Session) HasModule(key string) bool {
	return slices.Contains(s.SubscribedModules(), strings.ToLower(key))
}
