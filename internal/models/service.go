// Package models содержит доменные структуры каталога услуг и товаров,
// а также вспомогательные типы для списков и событий.
package models

import "time"

// Service услуга каталога в том виде, в каком она хранится и отдаётся клиенту.
type Service struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	Price           float64   `json:"price"`
	DurationMinutes *int      `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

// ServiceRecord нормализованные данные услуги, готовые к INSERT или UPDATE.
// Description и DurationMinutes равны nil, если значение отсутствует.
type ServiceRecord struct {
	Name            string  `json:"name" validate:"required"`
	Description     *string `json:"description"`
	Price           float64 `json:"price" validate:"gte=0"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,gt=0"`
}

// ServiceStats агрегаты по таблице услуг.
type ServiceStats struct {
	TotalServices int64      `json:"totalServices"`
	AveragePrice  float64    `json:"averagePrice"`
	PriceRange    PriceRange `json:"priceRange"`
}

// PriceRange минимальная и максимальная цена.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ServicePage страница списка услуг.
type ServicePage struct {
	Services   []Service
	Pagination Pagination
}
