package models

// list.go — обёртки списочных ответов backend API.
//
// Все списочные эндпойнты возвращают конверт {data: {items, meta}},
// одиночные — {data: T}. Структуры ниже повторяют этот wire-формат 1:1.

import (
	"net/url"
	"strconv"
)

// SortOrder — направление сортировки списочных запросов.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListParams — параметры пагинации/поиска/сортировки списочных эндпойнтов.
// Нулевые значения в query-строку не попадают.
type ListParams struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder SortOrder
	Search    string
	StoreID   int64
}

// Query кодирует параметры в query-строку backend API.
func (p ListParams) Query() url.Values {
	q := url.Values{}

	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", string(p.SortOrder))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.StoreID > 0 {
		q.Set("storeId", strconv.FormatInt(p.StoreID, 10))
	}

	return q
}

// ListMeta — метаданные пагинации из конверта ответа.
type ListMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
	HasMore    bool  `json:"hasMore"`
}

// List — типизированная страница списочного ответа.
type List[T any] struct {
	Items []T      `json:"items"`
	Meta  ListMeta `json:"meta"`
}
