package listview

import (
	"slices"
)

// Snapshot - неизменяемая копия состояния списка для отрисовки
type Snapshot[T any] struct {
	Status      Status            `json:"status"`
	Rows        []T               `json:"rows"`
	Count       int               `json:"count"`
	Page        int               `json:"page"`
	TotalPages  int               `json:"total_pages"`
	HasNext     bool              `json:"has_next"`
	HasPrevious bool              `json:"has_previous"`
	Filters     map[string]string `json:"filters"`
	Message     string            `json:"message,omitempty"`
}

// Busy - идет загрузка или фильтрация
func (s Snapshot[T]) Busy() bool {
	return s.Status == StatusLoading || s.Status == StatusFiltering
}

func (l *List[T]) Snapshot() Snapshot[T] {
	filters := l.Filters()

	l.mu.Lock()
	defer l.mu.Unlock()

	snap := Snapshot[T]{
		Status:      l.status,
		Rows:        []T{},
		Page:        l.pageNumber,
		HasNext:     l.page.HasNext(),
		HasPrevious: l.page.HasPrevious(),
		Filters:     filters,
	}
	if l.page != nil {
		snap.Rows = slices.Clone(l.page.Results)
		if snap.Rows == nil {
			snap.Rows = []T{}
		}
		snap.Count = l.page.Count
	}
	if l.cfg.PageSize > 0 && snap.Count > 0 {
		snap.TotalPages = (snap.Count + l.cfg.PageSize - 1) / l.cfg.PageSize
	}
	if l.loaded && len(snap.Rows) == 0 {
		snap.Message = l.cfg.EmptyMessage
	}
	return snap
}
