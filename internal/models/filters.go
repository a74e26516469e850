package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	// MaxPage ограничивает номер страницы, чтобы смещение не переполнялось
	MaxPage = 100000
)

// OccurrenceFilters - общий словарь фильтров для списка и агрегатов.
// Нулевые значения означают "фильтр не задан".
type OccurrenceFilters struct {
	Type         OccurrenceType   `json:"type,omitempty"`
	Status       OccurrenceStatus `json:"status,omitempty"`
	Municipality string           `json:"municipality,omitempty"`
	Neighborhood string           `json:"neighborhood,omitempty"`
	StartDate    *time.Time       `json:"start_date,omitempty"`
	EndDate      *time.Time       `json:"end_date,omitempty"`
	CreatedBy    *uuid.UUID       `json:"created_by,omitempty"`
	VehicleID    *uuid.UUID       `json:"vehicle_id,omitempty"`
	Search       string           `json:"search,omitempty"`
	Page         int              `json:"page,omitempty"`
	Limit        int              `json:"limit,omitempty"`
}

// Normalize подставляет значения пагинации по умолчанию
func (f OccurrenceFilters) Normalize() OccurrenceFilters {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Page > MaxPage {
		f.Page = MaxPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return f
}

// Offset возвращает смещение для текущей страницы
func (f OccurrenceFilters) Offset() int {
	return (f.Page - 1) * f.Limit
}
