// Package listview - общий контроллер постраничного списка с фильтрами.
// Хранит фильтры и номер страницы, перезапрашивает данные при каждом
// изменении и применяет только ответ на последний запрос.
package listview

import (
	"context"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/shenikar/fortiq_portal/internal/models"
	"github.com/sirupsen/logrus"
)

type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusFiltering Status = "filtering"
	StatusLoaded    Status = "loaded"
	StatusError     Status = "error"
)

// Loader загружает конверт страницы по URL (относительному или абсолютному)
type Loader[T any] func(ctx context.Context, url string) (*models.Page[T], error)

// NotifyFunc доставляет уведомление пользователю
type NotifyFunc func(ctx context.Context, n models.Notification)

type Config struct {
	// Name - имя списка в логах
	Name     string
	Endpoint string
	// BaseQuery - неизменяемые параметры запроса (например, personnel_assignment_status)
	BaseQuery url.Values
	// PageSize - размер страницы; 0 - параметры page/page_size не отправляются
	PageSize int
	// ErrorMessage - текст уведомления при ошибке загрузки
	ErrorMessage string
	// PageErrorMessage - текст уведомления при ошибке перехода по next/previous
	PageErrorMessage string
	// EmptyMessage показывается вместо пустой таблицы
	EmptyMessage string
}

type List[T any] struct {
	cfg    Config
	load   Loader[T]
	notify NotifyFunc
	logger *logrus.Logger

	mu         sync.Mutex
	filters    url.Values
	pageNumber int
	gen        uint64
	status     Status
	page       *models.Page[T]
	loaded     bool
	onLoaded   func(rows []T)
}

func New[T any](cfg Config, load Loader[T], notify NotifyFunc, logger *logrus.Logger) *List[T] {
	if cfg.PageErrorMessage == "" {
		cfg.PageErrorMessage = cfg.ErrorMessage
	}
	if notify == nil {
		notify = func(context.Context, models.Notification) {}
	}
	return &List[T]{
		cfg:        cfg,
		load:       load,
		notify:     notify,
		logger:     logger,
		filters:    url.Values{},
		pageNumber: 1,
		status:     StatusIdle,
	}
}

// OnLoaded регистрирует обработчик, который получает строки после каждой успешной загрузки
func (l *List[T]) OnLoaded(fn func(rows []T)) {
	l.mu.Lock()
	l.onLoaded = fn
	l.mu.Unlock()
}

// Load загружает текущую страницу с текущими фильтрами
func (l *List[T]) Load(ctx context.Context) error {
	l.mu.Lock()
	pageNumber := l.pageNumber
	target := l.urlLocked(pageNumber)
	l.mu.Unlock()
	return l.fetch(ctx, target, pageNumber, l.cfg.ErrorMessage)
}

// Loaded сообщает, была ли хоть одна успешная загрузка
func (l *List[T]) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// SetFilter меняет один фильтр и загружает первую страницу.
// Значения "all" и "" убирают фильтр из запроса.
func (l *List[T]) SetFilter(ctx context.Context, key, value string) error {
	return l.SetFilters(ctx, map[string]string{key: value})
}

// SetFilters меняет несколько фильтров одним запросом
func (l *List[T]) SetFilters(ctx context.Context, values map[string]string) error {
	l.mu.Lock()
	l.applyLocked(values)
	target := l.urlLocked(1)
	l.mu.Unlock()
	return l.fetch(ctx, target, 1, l.cfg.ErrorMessage)
}

// GoToPage загружает страницу по номеру
func (l *List[T]) GoToPage(ctx context.Context, pageNumber int) error {
	if pageNumber < 1 {
		pageNumber = 1
	}
	l.mu.Lock()
	target := l.urlLocked(pageNumber)
	l.mu.Unlock()
	return l.fetch(ctx, target, pageNumber, l.cfg.PageErrorMessage)
}

// Next переходит по ссылке next из конверта; без ссылки ничего не делает
func (l *List[T]) Next(ctx context.Context) error {
	l.mu.Lock()
	if !l.page.HasNext() {
		l.mu.Unlock()
		return nil
	}
	target, pageNumber := *l.page.Next, l.pageNumber+1
	l.mu.Unlock()
	return l.fetch(ctx, target, pageNumber, l.cfg.PageErrorMessage)
}

// Previous переходит по ссылке previous из конверта; без ссылки ничего не делает
func (l *List[T]) Previous(ctx context.Context) error {
	l.mu.Lock()
	if !l.page.HasPrevious() {
		l.mu.Unlock()
		return nil
	}
	target, pageNumber := *l.page.Previous, max(l.pageNumber-1, 1)
	l.mu.Unlock()
	return l.fetch(ctx, target, pageNumber, l.cfg.PageErrorMessage)
}

// Seed подставляет страницу, пришедшую в составе другого ответа (например, отчета)
func (l *List[T]) Seed(page *models.Page[T]) {
	l.mu.Lock()
	l.gen++
	if page == nil {
		page = &models.Page[T]{}
	}
	l.page = page
	l.pageNumber = 1
	l.loaded = true
	l.status = StatusLoaded
	onLoaded := l.onLoaded
	rows := slices.Clone(page.Results)
	l.mu.Unlock()

	if onLoaded != nil {
		onLoaded(rows)
	}
}

// Preset меняет фильтры без загрузки: данные с этими фильтрами пришли в составе другого ответа
func (l *List[T]) Preset(values map[string]string) {
	l.mu.Lock()
	l.applyLocked(values)
	l.mu.Unlock()
}

func (l *List[T]) fetch(ctx context.Context, target string, pageNumber int, errMessage string) error {
	log := l.logger.WithFields(logrus.Fields{
		"list": l.cfg.Name,
		"url":  target,
	})

	l.mu.Lock()
	l.gen++
	gen := l.gen
	if l.loaded {
		l.status = StatusFiltering
	} else {
		l.status = StatusLoading
	}
	l.mu.Unlock()

	page, err := l.load(ctx, target)

	l.mu.Lock()
	if gen != l.gen {
		l.mu.Unlock()
		// Ответ на устаревший запрос: применять нечего
		log.WithField("generation", gen).Debug("Discarding superseded list response")
		return nil
	}
	if err != nil {
		if l.loaded {
			l.status = StatusLoaded
		} else {
			l.status = StatusError
			l.page = nil
		}
		l.mu.Unlock()
		log.WithError(err).Warn("Failed to load list")
		l.notify(ctx, models.ErrorNotification(errMessage))
		return err
	}
	if page == nil {
		page = &models.Page[T]{}
	}
	l.page = page
	l.pageNumber = pageNumber
	l.loaded = true
	l.status = StatusLoaded
	onLoaded := l.onLoaded
	rows := slices.Clone(page.Results)
	l.mu.Unlock()

	log.WithField("count", page.Count).Debug("List loaded")
	if onLoaded != nil {
		onLoaded(rows)
	}
	return nil
}

func (l *List[T]) applyLocked(values map[string]string) {
	for key, value := range values {
		value = strings.TrimSpace(value)
		if value == "" || value == models.FilterAll {
			l.filters.Del(key)
			continue
		}
		l.filters.Set(key, value)
	}
}

// urlLocked собирает URL запроса; вызывать под мьютексом
func (l *List[T]) urlLocked(pageNumber int) string {
	q := url.Values{}
	for key, values := range l.cfg.BaseQuery {
		q[key] = slices.Clone(values)
	}
	for key, values := range l.filters {
		q[key] = slices.Clone(values)
	}
	if l.cfg.PageSize > 0 {
		q.Set("page", strconv.Itoa(pageNumber))
		q.Set("page_size", strconv.Itoa(l.cfg.PageSize))
	} else if pageNumber > 1 {
		q.Set("page", strconv.Itoa(pageNumber))
	}
	if len(q) == 0 {
		return l.cfg.Endpoint
	}
	return l.cfg.Endpoint + "?" + q.Encode()
}

// Filters возвращает копию текущих фильтров
func (l *List[T]) Filters() map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]string, len(l.filters))
	for key := range l.filters {
		out[key] = l.filters.Get(key)
	}
	return out
}
