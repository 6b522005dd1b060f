// Package assignment - черновики назначения офицера и охранников на объект.
package assignment

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/shenikar/fortiq_portal/internal/models"
)

// ValidationError - черновик нельзя отправить; Message показывается пользователю
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrNoOfficer       = &ValidationError{Message: "Please select a patrolling officer."}
	ErrNoGuards        = &ValidationError{Message: "Please select at least one guard."}
	ErrInvalidGeofence = &ValidationError{Message: "Geofence perimeter must be a non-negative whole number."}
)

// ErrUnknownSite - для объекта нет черновика (его нет среди неназначенных)
var ErrUnknownSite = errors.New("site is not in the unassigned list")

// Toggle - результат переключения охранника
type Toggle string

const (
	GuardAdded    Toggle = "added"
	GuardRemoved  Toggle = "removed"
	GuardRejected Toggle = "rejected"
)

// Draft - черновик назначения одного объекта
type Draft struct {
	SiteID            int    `json:"site_id"`
	OfficerID         int    `json:"patrol_officer_id,omitempty"`
	GuardIDs          []int  `json:"guard_ids"`
	GeofencePerimeter string `json:"geofence_perimeter"`
	GuardsRequired    int    `json:"guards_required"`
	CanSubmit         bool   `json:"can_submit"`
}

type NotifyFunc func(ctx context.Context, n models.Notification)

// Form хранит черновики по id объекта. Количество выбранных охранников
// никогда не превышает требуемое для объекта.
type Form struct {
	notify NotifyFunc

	mu     sync.Mutex
	drafts map[int]*Draft
}

func NewForm(notify NotifyFunc) *Form {
	if notify == nil {
		notify = func(context.Context, models.Notification) {}
	}
	return &Form{
		notify: notify,
		drafts: make(map[int]*Draft),
	}
}

// Reset синхронизирует черновики со списком неназначенных объектов.
// Черновики исчезнувших объектов удаляются, новые получают периметр геозоны объекта,
// у оставшихся пересчитывается лимит охранников.
func (f *Form) Reset(ctx context.Context, sites []models.Site) {
	f.mu.Lock()
	next := make(map[int]*Draft, len(sites))
	for _, site := range sites {
		d, ok := f.drafts[site.ID]
		if !ok {
			d = &Draft{SiteID: site.ID, GuardIDs: []int{}}
			if site.GeofencePerimeter != nil {
				d.GeofencePerimeter = strconv.Itoa(*site.GeofencePerimeter)
			}
		}
		next[site.ID] = d
	}
	f.drafts = next
	f.mu.Unlock()

	// Требуемое число охранников могло измениться на сервере
	for _, site := range sites {
		_ = f.SetRequired(ctx, site.ID, site.TotalGuardsRequested)
	}
}

func (f *Form) SelectOfficer(siteID, officerID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.drafts[siteID]
	if !ok {
		return ErrUnknownSite
	}
	d.OfficerID = officerID
	return nil
}

// ToggleGuard снимает выбранного охранника или добавляет нового, если лимит объекта не исчерпан
func (f *Form) ToggleGuard(siteID, guardID int) (Toggle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.drafts[siteID]
	if !ok {
		return "", ErrUnknownSite
	}
	if i := slices.Index(d.GuardIDs, guardID); i >= 0 {
		d.GuardIDs = slices.Delete(d.GuardIDs, i, i+1)
		return GuardRemoved, nil
	}
	if len(d.GuardIDs) >= d.GuardsRequired {
		return GuardRejected, nil
	}
	d.GuardIDs = append(d.GuardIDs, guardID)
	return GuardAdded, nil
}

func (f *Form) SetGeofence(siteID int, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.drafts[siteID]
	if !ok {
		return ErrUnknownSite
	}
	d.GeofencePerimeter = strings.TrimSpace(value)
	return nil
}

// SetRequired меняет лимит охранников; лишние охранники отбрасываются с предупреждением
func (f *Form) SetRequired(ctx context.Context, siteID, required int) error {
	f.mu.Lock()
	d, ok := f.drafts[siteID]
	if !ok {
		f.mu.Unlock()
		return ErrUnknownSite
	}
	d.GuardsRequired = max(required, 0)
	limit := d.GuardsRequired
	truncated := enforceLimit(d)
	f.mu.Unlock()

	if truncated {
		f.notify(ctx, limitWarning(limit))
	}
	return nil
}

// Draft возвращает копию черновика объекта
func (f *Form) Draft(siteID int) (Draft, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.drafts[siteID]
	if !ok {
		return Draft{}, false
	}
	return d.view(), true
}

// Drafts возвращает копии всех черновиков
func (f *Form) Drafts() map[int]Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[int]Draft, len(f.drafts))
	for id, d := range f.drafts {
		out[id] = d.view()
	}
	return out
}

// Request проверяет черновик и собирает тело запроса назначения
func (f *Form) Request(siteID int) (models.AssignPersonnelRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.drafts[siteID]
	if !ok {
		return models.AssignPersonnelRequest{}, ErrUnknownSite
	}
	if d.OfficerID == 0 {
		return models.AssignPersonnelRequest{}, ErrNoOfficer
	}
	if len(d.GuardIDs) == 0 {
		return models.AssignPersonnelRequest{}, ErrNoGuards
	}
	req := models.AssignPersonnelRequest{
		PatrolOfficerID: d.OfficerID,
		GuardIDs:        slices.Clone(d.GuardIDs),
	}
	if d.GeofencePerimeter != "" {
		perimeter, err := strconv.Atoi(d.GeofencePerimeter)
		if err != nil || perimeter < 0 {
			return models.AssignPersonnelRequest{}, ErrInvalidGeofence
		}
		req.GeofencePerimeter = &perimeter
	}
	return req, nil
}

// Discard удаляет черновик после успешной отправки
func (f *Form) Discard(siteID int) {
	f.mu.Lock()
	delete(f.drafts, siteID)
	f.mu.Unlock()
}

func (d *Draft) view() Draft {
	v := *d
	v.GuardIDs = slices.Clone(d.GuardIDs)
	if v.GuardIDs == nil {
		v.GuardIDs = []int{}
	}
	v.CanSubmit = d.OfficerID != 0 && len(d.GuardIDs) > 0
	return v
}

// enforceLimit обрезает выбор до лимита; true, если что-то было отброшено
func enforceLimit(d *Draft) bool {
	if len(d.GuardIDs) <= d.GuardsRequired {
		return false
	}
	d.GuardIDs = d.GuardIDs[:d.GuardsRequired]
	return true
}

func limitWarning(required int) models.Notification {
	return models.NewNotification(models.NotificationWarning, "Guard Limit Reached",
		fmt.Sprintf("You cannot assign more than %d guard(s) to this site.", required))
}
