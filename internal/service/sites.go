package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"sync"

	"github.com/shenikar/fortiq_portal/internal/assignment"
	"github.com/shenikar/fortiq_portal/internal/cascade"
	"github.com/shenikar/fortiq_portal/internal/endpoint"
	"github.com/shenikar/fortiq_portal/internal/listview"
	"github.com/shenikar/fortiq_portal/internal/models"
	"github.com/shenikar/fortiq_portal/pkg/fetcher"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type SitesTab string

const (
	TabAssigned   SitesTab = "assigned"
	TabUnassigned SitesTab = "unassigned"
)

func ParseSitesTab(raw string) (SitesTab, error) {
	switch tab := SitesTab(raw); tab {
	case TabAssigned, TabUnassigned:
		return tab, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, raw)
}

func (t SitesTab) assignmentStatus() models.AssignmentStatus {
	if t == TabAssigned {
		return models.SiteAssigned
	}
	return models.SiteUnassigned
}

// SitesFilters - изменения фильтров вкладки; nil оставляет фильтр как есть
type SitesFilters struct {
	Search        *string
	PatrolOfficer *string
	City          *string
}

const (
	MoveNext     = "next"
	MovePrevious = "previous"
)

// PageMove - переход по ссылке next/previous или на страницу по номеру
type PageMove struct {
	Direction string
	Page      int
}

type PersonOption struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city,omitempty"`
	Selected bool   `json:"selected"`
}

// PersonGroup - группа в выпадающем списке ("In Lahore", "Other Cities")
type PersonGroup struct {
	Label  string         `json:"label"`
	People []PersonOption `json:"people"`
}

// SiteAssignment - черновик назначения объекта вместе с вариантами выбора
type SiteAssignment struct {
	Site     models.Site      `json:"site"`
	Draft    assignment.Draft `json:"draft"`
	Officers []PersonGroup    `json:"officers"`
	Guards   []PersonGroup    `json:"guards"`
}

type GuardToggle struct {
	Result     assignment.Toggle `json:"result"`
	Assignment SiteAssignment    `json:"assignment"`
}

type SitesTabView struct {
	Tab     SitesTab                       `json:"tab"`
	List    listview.Snapshot[models.Site] `json:"list"`
	Cascade cascade.Snapshot               `json:"cascade"`
	// OfficerOptions - офицеры из назначенных объектов для фильтра patrol_officer
	OfficerOptions []PersonOption   `json:"officer_options,omitempty"`
	Assignments    []SiteAssignment `json:"assignments,omitempty"`
}

// SitesPage - страница объектов агентства: вкладки назначенных и неназначенных
// объектов, каскад регион/город для каждой вкладки и черновики назначения.
type SitesPage struct {
	session *models.Session
	api     API
	notify  func(context.Context, models.Notification)
	logger  *logrus.Logger

	lists    map[SitesTab]*listview.List[models.Site]
	cascades map[SitesTab]*cascade.Cascade
	form     *assignment.Form

	// openMu сериализует загрузку общих данных; флаги ставятся только после успеха
	openMu        sync.Mutex
	regionsLoaded bool
	supportLoaded bool

	mu               sync.Mutex
	officers         []models.PatrollingOfficer
	guards           []models.Guard
	assignedOfficers []PersonOption
	unassigned       []models.Site
}

func NewSitesPage(session *models.Session, api API, notify func(context.Context, models.Notification), pageSize int, logger *logrus.Logger) *SitesPage {
	p := &SitesPage{
		session:  session,
		api:      api,
		notify:   notify,
		logger:   logger,
		lists:    make(map[SitesTab]*listview.List[models.Site], 2),
		cascades: make(map[SitesTab]*cascade.Cascade, 2),
		form:     assignment.NewForm(notify),
	}

	token := session.Token
	loadSites := func(ctx context.Context, url string) (*models.Page[models.Site], error) {
		return api.Sites(ctx, token, url)
	}
	loadRegions := func(ctx context.Context, countryID int) ([]models.Region, error) {
		return api.Regions(ctx, token, countryID)
	}
	loadCities := func(ctx context.Context, countryID int, regionID string) ([]models.City, error) {
		return api.Cities(ctx, token, countryID, regionID)
	}

	for _, tab := range []SitesTab{TabAssigned, TabUnassigned} {
		status := tab.assignmentStatus()
		p.lists[tab] = listview.New(listview.Config{
			Name:         string(tab) + "_sites",
			Endpoint:     endpoint.SitesList(session.OrgCode()),
			BaseQuery:    url.Values{"personnel_assignment_status": {string(status)}},
			PageSize:     pageSize,
			ErrorMessage: fmt.Sprintf("Failed to load %s sites.", tab),
			EmptyMessage: fmt.Sprintf("No %s sites found for the current filter.", tab),
		}, loadSites, notify, logger)
		p.cascades[tab] = cascade.New(session.CountryID(), loadRegions, loadCities, logger)
	}

	p.lists[TabAssigned].OnLoaded(p.onAssignedLoaded)
	p.lists[TabUnassigned].OnLoaded(p.onUnassignedLoaded)
	return p
}

// open загружает общие для вкладок данные: регионы, офицеров и свободных охранников.
// Неудавшаяся часть повторяется при следующем открытии страницы.
func (p *SitesPage) open(ctx context.Context) {
	p.openMu.Lock()
	defer p.openMu.Unlock()
	if p.regionsLoaded && p.supportLoaded {
		return
	}

	var (
		g                      errgroup.Group
		regionsErr, supportErr error
	)
	if !p.regionsLoaded {
		g.Go(func() error {
			regionsErr = p.loadRegions(ctx)
			return nil
		})
	}
	if !p.supportLoaded {
		g.Go(func() error {
			supportErr = p.loadSupportingData(ctx)
			return nil
		})
	}
	_ = g.Wait()

	p.regionsLoaded = p.regionsLoaded || regionsErr == nil
	p.supportLoaded = p.supportLoaded || supportErr == nil
}

// loadRegions загружает регионы каскадом назначенной вкладки и делится ими со второй вкладкой
func (p *SitesPage) loadRegions(ctx context.Context) error {
	primary := p.cascades[TabAssigned]
	if err := primary.LoadRegions(ctx); err != nil {
		return err
	}
	p.cascades[TabUnassigned].SetRegions(primary.Regions())
	return nil
}

func (p *SitesPage) loadSupportingData(ctx context.Context) error {
	var (
		officers []models.PatrollingOfficer
		guards   []models.Guard
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		officers, err = p.api.PatrolOfficers(gctx, p.session.Token, p.session.OrgCode())
		return err
	})
	g.Go(func() error {
		var err error
		guards, err = p.api.UnassignedGuards(gctx, p.session.Token, p.session.OrgCode())
		return err
	})
	if err := g.Wait(); err != nil {
		p.logger.WithError(err).Warn("Failed to load supporting data")
		p.notify(ctx, models.ErrorNotification("Failed to load supporting data."))
		return err
	}

	p.mu.Lock()
	p.officers = officers
	p.guards = guards
	p.mu.Unlock()
	return nil
}

// reloadGuards обновляет пул свободных охранников после назначения
func (p *SitesPage) reloadGuards(ctx context.Context) error {
	guards, err := p.api.UnassignedGuards(ctx, p.session.Token, p.session.OrgCode())
	if err != nil {
		p.notify(ctx, models.ErrorNotification("Failed to load supporting data."))
		return err
	}
	p.mu.Lock()
	p.guards = guards
	p.mu.Unlock()
	return nil
}

func (p *SitesPage) onAssignedLoaded(rows []models.Site) {
	seen := make(map[int]bool)
	var options []PersonOption
	for _, site := range rows {
		for _, po := range site.PatrolOfficerDetails {
			if seen[po.ID] {
				continue
			}
			seen[po.ID] = true
			options = append(options, PersonOption{ID: po.ID, Name: po.Name(), City: po.City})
		}
	}

	p.mu.Lock()
	p.assignedOfficers = options
	p.mu.Unlock()
}

func (p *SitesPage) onUnassignedLoaded(rows []models.Site) {
	p.mu.Lock()
	p.unassigned = rows
	p.mu.Unlock()
	p.form.Reset(context.Background(), rows)
}

func (p *SitesPage) list(tab SitesTab) (*listview.List[models.Site], *cascade.Cascade, error) {
	list, ok := p.lists[tab]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}
	return list, p.cascades[tab], nil
}

// Tab возвращает состояние вкладки, загружая ее при первом обращении
func (p *SitesPage) Tab(ctx context.Context, tab SitesTab) (*SitesTabView, error) {
	list, _, err := p.list(tab)
	if err != nil {
		return nil, err
	}
	p.open(ctx)
	if !list.Loaded() {
		_ = list.Load(ctx)
	}
	return p.view(tab), nil
}

// SetFilters меняет поиск, офицера (только назначенные) и город
func (p *SitesPage) SetFilters(ctx context.Context, tab SitesTab, f SitesFilters) (*SitesTabView, error) {
	list, c, err := p.list(tab)
	if err != nil {
		return nil, err
	}
	values := make(map[string]string, 3)
	if f.Search != nil {
		values["search"] = *f.Search
	}
	if f.PatrolOfficer != nil && tab == TabAssigned {
		values["patrol_officer"] = *f.PatrolOfficer
	}
	if f.City != nil {
		c.SelectCity(*f.City)
		values["city"] = *f.City
	}
	if len(values) > 0 {
		_ = list.SetFilters(ctx, values)
	}
	return p.view(tab), nil
}

// SelectRegion меняет регион: города региона и первая страница списка загружаются параллельно
func (p *SitesPage) SelectRegion(ctx context.Context, tab SitesTab, region string) (*SitesTabView, error) {
	list, c, err := p.list(tab)
	if err != nil {
		return nil, err
	}
	var g errgroup.Group
	g.Go(func() error {
		c.SelectRegion(ctx, region)
		return nil
	})
	g.Go(func() error {
		return list.SetFilters(ctx, map[string]string{"region": region, "city": models.FilterAll})
	})
	if err := g.Wait(); err != nil {
		p.logger.WithError(err).WithField("tab", tab).Debug("Sites reload after region change failed")
	}
	return p.view(tab), nil
}

func (p *SitesPage) Move(ctx context.Context, tab SitesTab, move PageMove) (*SitesTabView, error) {
	list, _, err := p.list(tab)
	if err != nil {
		return nil, err
	}
	_ = movePage(ctx, list, move)
	return p.view(tab), nil
}

func (p *SitesPage) SelectOfficer(siteID, officerID int) (*SiteAssignment, error) {
	if err := p.form.SelectOfficer(siteID, officerID); err != nil {
		return nil, err
	}
	return p.assignment(siteID)
}

func (p *SitesPage) ToggleGuard(siteID, guardID int) (*GuardToggle, error) {
	result, err := p.form.ToggleGuard(siteID, guardID)
	if err != nil {
		return nil, err
	}
	view, err := p.assignment(siteID)
	if err != nil {
		return nil, err
	}
	return &GuardToggle{Result: result, Assignment: *view}, nil
}

func (p *SitesPage) SetGeofence(siteID int, value string) (*SiteAssignment, error) {
	if err := p.form.SetGeofence(siteID, value); err != nil {
		return nil, err
	}
	return p.assignment(siteID)
}

// Assign отправляет черновик назначения. После успеха обе вкладки
// перезагружаются с первой страницы.
func (p *SitesPage) Assign(ctx context.Context, siteID int) (*models.AssignPersonnelResponse, error) {
	log := p.logger.WithFields(logrus.Fields{
		"service": "sites",
		"method":  "Assign",
		"site_id": siteID,
	})

	req, err := p.form.Request(siteID)
	if err != nil {
		var vErr *assignment.ValidationError
		if errors.As(err, &vErr) {
			p.notify(ctx, models.ErrorNotification(vErr.Message))
		}
		return nil, err
	}

	resp, err := p.api.AssignPersonnel(ctx, p.session.Token, p.session.OrgCode(), siteID, req)
	if err != nil {
		log.WithError(err).Warn("Failed to assign personnel")
		description := fetcher.Detail(err)
		if description == "" {
			description = "Failed to assign site."
		}
		p.notify(ctx, models.NewNotification(models.NotificationDestructive, "Assignment Failed", description))
		return nil, fmt.Errorf("service: could not assign personnel: %w", err)
	}
	if resp == nil {
		resp = &models.AssignPersonnelResponse{}
	}

	log.Info("Personnel assigned")
	p.notify(ctx, models.NewNotification(models.NotificationDefault, "Site Assigned Successfully", resp.Message))
	p.form.Discard(siteID)

	var g errgroup.Group
	for _, list := range p.lists {
		g.Go(func() error {
			return list.GoToPage(ctx, 1)
		})
	}
	g.Go(func() error {
		return p.reloadGuards(ctx)
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Debug("Sites reload after assignment failed")
	}
	return resp, nil
}

func (p *SitesPage) view(tab SitesTab) *SitesTabView {
	list, c := p.lists[tab], p.cascades[tab]
	v := &SitesTabView{
		Tab:     tab,
		List:    list.Snapshot(),
		Cascade: c.Snapshot(),
	}
	if tab == TabAssigned {
		p.mu.Lock()
		v.OfficerOptions = slices.Clone(p.assignedOfficers)
		p.mu.Unlock()
		return v
	}
	for _, site := range v.List.Rows {
		if a, err := p.assignment(site.ID); err == nil {
			v.Assignments = append(v.Assignments, *a)
		}
	}
	return v
}

func (p *SitesPage) assignment(siteID int) (*SiteAssignment, error) {
	draft, ok := p.form.Draft(siteID)
	if !ok {
		return nil, assignment.ErrUnknownSite
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	i := slices.IndexFunc(p.unassigned, func(s models.Site) bool { return s.ID == siteID })
	if i < 0 {
		return nil, assignment.ErrUnknownSite
	}
	site := p.unassigned[i]

	officers := groupByCity(p.officers, site.City, func(o models.PatrollingOfficer) PersonOption {
		return PersonOption{ID: o.ID, Name: o.Name(), City: o.City, Selected: o.ID == draft.OfficerID}
	})
	guards := groupByCity(p.guards, site.City, func(g models.Guard) PersonOption {
		return PersonOption{ID: g.ID, Name: g.Name(), City: g.City, Selected: slices.Contains(draft.GuardIDs, g.ID)}
	})
	return &SiteAssignment{Site: site, Draft: draft, Officers: officers, Guards: guards}, nil
}

// groupByCity делит людей на "In {city}" и "Other Cities"; пустые группы опускаются
func groupByCity[T any](people []T, city string, option func(T) PersonOption) []PersonGroup {
	inCity := PersonGroup{Label: "In " + city}
	other := PersonGroup{Label: "Other Cities"}
	for _, person := range people {
		o := option(person)
		if city != "" && o.City == city {
			inCity.People = append(inCity.People, o)
		} else {
			other.People = append(other.People, o)
		}
	}
	groups := make([]PersonGroup, 0, 2)
	if len(inCity.People) > 0 {
		groups = append(groups, inCity)
	}
	if len(other.People) > 0 {
		groups = append(groups, other)
	}
	return groups
}

// movePage переходит по ссылке или на страницу по номеру
func movePage[T any](ctx context.Context, list *listview.List[T], move PageMove) error {
	switch move.Direction {
	case MoveNext:
		return list.Next(ctx)
	case MovePrevious:
		return list.Previous(ctx)
	}
	return list.GoToPage(ctx, move.Page)
}

// SitesService определяет контракт страницы объектов агентства для хэндлеров
type SitesService interface {
	Tab(ctx context.Context, session *models.Session, tab SitesTab) (*SitesTabView, error)
	SetFilters(ctx context.Context, session *models.Session, tab SitesTab, f SitesFilters) (*SitesTabView, error)
	SelectRegion(ctx context.Context, session *models.Session, tab SitesTab, region string) (*SitesTabView, error)
	Move(ctx context.Context, session *models.Session, tab SitesTab, move PageMove) (*SitesTabView, error)
	SelectOfficer(ctx context.Context, session *models.Session, siteID, officerID int) (*SiteAssignment, error)
	ToggleGuard(ctx context.Context, session *models.Session, siteID, guardID int) (*GuardToggle, error)
	SetGeofence(ctx context.Context, session *models.Session, siteID int, value string) (*SiteAssignment, error)
	Assign(ctx context.Context, session *models.Session, siteID int) (*models.AssignPersonnelResponse, error)
}

type sitesService struct {
	api        API
	notifier   Notifier
	workspaces *Workspaces
	pageSize   int
	logger     *logrus.Logger
}

func NewSitesService(api API, notifier Notifier, workspaces *Workspaces, pageSize int, logger *logrus.Logger) SitesService {
	return &sitesService{
		api:        api,
		notifier:   notifier,
		workspaces: workspaces,
		pageSize:   pageSize,
		logger:     logger,
	}
}

// page возвращает страницу объектов сессии, создавая ее при первом обращении
func (s *sitesService) page(session *models.Session) *SitesPage {
	ws := s.workspaces.get(session.ID)
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.sites == nil {
		ws.sites = NewSitesPage(session, s.api, sessionNotify(s.notifier, session.ID, s.logger), s.pageSize, s.logger)
	}
	return ws.sites
}

func (s *sitesService) Tab(ctx context.Context, session *models.Session, tab SitesTab) (*SitesTabView, error) {
	return s.page(session).Tab(ctx, tab)
}

func (s *sitesService) SetFilters(ctx context.Context, session *models.Session, tab SitesTab, f SitesFilters) (*SitesTabView, error) {
	return s.page(session).SetFilters(ctx, tab, f)
}

func (s *sitesService) SelectRegion(ctx context.Context, session *models.Session, tab SitesTab, region string) (*SitesTabView, error) {
	return s.page(session).SelectRegion(ctx, tab, region)
}

func (s *sitesService) Move(ctx context.Context, session *models.Session, tab SitesTab, move PageMove) (*SitesTabView, error) {
	return s.page(session).Move(ctx, tab, move)
}

func (s *sitesService) SelectOfficer(_ context.Context, session *models.Session, siteID, officerID int) (*SiteAssignment, error) {
	return s.page(session).SelectOfficer(siteID, officerID)
}

func (s *sitesService) ToggleGuard(_ context.Context, session *models.Session, siteID, guardID int) (*GuardToggle, error) {
	return s.page(session).ToggleGuard(siteID, guardID)
}

func (s *sitesService) SetGeofence(_ context.Context, session *models.Session, siteID int, value string) (*SiteAssignment, error) {
	return s.page(session).SetGeofence(siteID, value)
}

func (s *sitesService) Assign(ctx context.Context, session *models.Session, siteID int) (*models.AssignPersonnelResponse, error) {
	return s.page(session).Assign(ctx, siteID)
}
