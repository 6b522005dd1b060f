package models

// FilterAll - значение фильтра "все", которое не попадает в запрос к API
const FilterAll = "all"

// Page - конверт пагинации API: {count, next, previous, results}.
// Next и Previous - абсолютные или относительные ссылки, по которым ходим как есть.
type Page[T any] struct {
	Count    int     `json:"count" validate:"gte=0"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results" validate:"omitempty,dive"`
}

func (p *Page[T]) HasNext() bool {
	return p != nil && p.Next != nil
}

func (p *Page[T]) HasPrevious() bool {
	return p != nil && p.Previous != nil
}
