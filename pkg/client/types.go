package client

import (
	"fmt"
	"time"
)

// Service услуга в ответах API.
type Service struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	Price           float64   `json:"price"`
	DurationMinutes *int      `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

// ServiceInput тело запроса на создание или обновление услуги.
type ServiceInput struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
}

// ListOptions параметры списка. Нулевые значения не передаются, сервер подставит свои.
type ListOptions struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int64 `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

type Sort struct {
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

// ServiceList страница услуг.
type ServiceList struct {
	Services   []Service  `json:"services"`
	Pagination Pagination `json:"pagination"`
	Search     *string    `json:"search"`
	Sort       Sort       `json:"sort"`
}

type Stats struct {
	TotalServices int64   `json:"totalServices"`
	AveragePrice  float64 `json:"averagePrice"`
	PriceRange    struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"priceRange"`
}

// Health ответ /health.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// APIError ответ сервера со статусом не 2xx или с success=false.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}
