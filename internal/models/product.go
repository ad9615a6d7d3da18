package models

import "time"

// Product товар. UpdatedAt обновляет хранилище при каждой записи.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductRecord нормализованные данные товара.
type ProductRecord struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// ProductPage страница списка товаров.
type ProductPage struct {
	Products   []Product
	Pagination Pagination
}
