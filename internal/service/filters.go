package service

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/shenikar/fortiq_portal/internal/models"
)

var ErrInvalidFilter = errors.New("invalid filter")

// ReportFilters - фильтры таблицы инцидентов. Пустое значение и "all" снимают фильтр,
// Month - номер месяца 1..12, Status - all, active, under-review или resolved.
type ReportFilters struct {
	Year   string
	Month  string
	Status string
}

// values переводит фильтры в параметры запроса API
func (f ReportFilters) values() (map[string]string, error) {
	status, err := models.ParseIncidentStatus(f.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}
	if err := checkPeriod(f.Year, f.Month); err != nil {
		return nil, err
	}
	values := map[string]string{
		"year":            orAll(f.Year),
		"month":           orAll(f.Month),
		"incident_status": orAll(string(status)),
	}
	return values, nil
}

// PerformanceFilters - период расчета показателей агентства
type PerformanceFilters struct {
	Year  string
	Month string
}

func (f PerformanceFilters) values() (map[string]string, error) {
	if err := checkPeriod(f.Year, f.Month); err != nil {
		return nil, err
	}
	return map[string]string{"year": orAll(f.Year), "month": orAll(f.Month)}, nil
}

func checkPeriod(year, month string) error {
	if year != "" && year != models.FilterAll {
		if y, err := strconv.Atoi(year); err != nil || y < 1 {
			return fmt.Errorf("%w: year %q", ErrInvalidFilter, year)
		}
	}
	if month != "" && month != models.FilterAll {
		if m, err := strconv.Atoi(month); err != nil || m < 1 || m > 12 {
			return fmt.Errorf("%w: month %q", ErrInvalidFilter, month)
		}
	}
	return nil
}

func orAll(v string) string {
	if v == "" {
		return models.FilterAll
	}
	return v
}

// queryOf убирает из фильтров значения "all"
func queryOf(values map[string]string) url.Values {
	q := make(url.Values, len(values))
	for key, value := range values {
		if value != models.FilterAll {
			q[key] = []string{value}
		}
	}
	return q
}

// incidentYears - годы инцидентов по убыванию. Текущий год добавляется
// всегда (withCurrent) или только если инцидентов нет.
func incidentYears(incidents []models.Incident, now time.Time, withCurrent bool) []string {
	set := make(map[int]bool)
	for _, incident := range incidents {
		if !incident.IncidentTime.IsZero() {
			set[incident.IncidentTime.Year()] = true
		}
	}
	if withCurrent || len(set) == 0 {
		set[now.Year()] = true
	}
	years := make([]int, 0, len(set))
	for y := range set {
		years = append(years, y)
	}
	slices.Sort(years)
	slices.Reverse(years)

	out := make([]string, 0, len(years))
	for _, y := range years {
		out = append(out, strconv.Itoa(y))
	}
	return out
}

// recentYears - последние n лет, начиная с текущего
func recentYears(now time.Time, n int) []string {
	out := make([]string, 0, n)
	for i := range n {
		out = append(out, strconv.Itoa(now.Year()-i))
	}
	return out
}
