// Package response содержит типы JSON-ответов API и функции их формирования.
// Каждый ответ содержит поле success, ответ с ошибкой также поле error.
package response

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/jayden648/shoesclean/internal/lib/apperr"
	"github.com/jayden648/shoesclean/internal/models"
)

// ErrorResponse ответ с ошибкой. В error попадает только сообщение для клиента.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Service not found"`
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// WriteError отвечает статусом и сообщением, соответствующими виду ошибки.
// Для сбоев хранилища и неизвестных ошибок клиенту отдаётся fallback.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	WriteErrorStatus(w, r, apperr.HTTPStatus(err), err, fallback)
}

// WriteErrorStatus то же, что WriteError, но с явным статусом.
func WriteErrorStatus(w http.ResponseWriter, r *http.Request, status int, err error, fallback string) {
	render.Status(r, status)
	render.JSON(w, r, Error(apperr.Message(err, fallback)))
}

// ServiceList ответ GET /api/services.
type ServiceList struct {
	Success    bool              `json:"success" example:"true"`
	Services   []models.Service  `json:"services"`
	Pagination models.Pagination `json:"pagination"`
	Search     *string           `json:"search"`
	Sort       models.Sort       `json:"sort"`
}

// ServiceItem ответ с одной услугой. Message заполняется для операций записи.
type ServiceItem struct {
	Success bool            `json:"success" example:"true"`
	Message string          `json:"message,omitempty" example:"Service added successfully"`
	Service *models.Service `json:"service"`
}

// ServiceDeleted ответ DELETE /api/services/{id}.
type ServiceDeleted struct {
	Success        bool            `json:"success" example:"true"`
	Message        string          `json:"message" example:"Service deleted successfully"`
	DeletedService *models.Service `json:"deletedService"`
}

// ServiceStats ответ GET /api/services/stats.
type ServiceStats struct {
	Success bool                `json:"success" example:"true"`
	Stats   models.ServiceStats `json:"stats"`
}

type ProductList struct {
	Success    bool              `json:"success" example:"true"`
	Products   []models.Product  `json:"products"`
	Pagination models.Pagination `json:"pagination"`
	Search     *string           `json:"search"`
	Sort       models.Sort       `json:"sort"`
}

type ProductItem struct {
	Success bool            `json:"success" example:"true"`
	Message string          `json:"message,omitempty" example:"Product added successfully"`
	Product *models.Product `json:"product"`
}

type ProductDeleted struct {
	Success        bool            `json:"success" example:"true"`
	Message        string          `json:"message" example:"Product deleted successfully"`
	DeletedProduct *models.Product `json:"deletedProduct"`
}

// Search возвращает строку поиска или nil, если она пустая.
func Search(q models.ListQuery) *string {
	if q.Search == "" {
		return nil
	}
	s := q.Search
	return &s
}

// Sort возвращает параметры сортировки для ответа. Направление отдаётся в нижнем регистре.
func Sort(q models.ListQuery) models.Sort {
	order := "asc"
	if q.SortOrder == "DESC" {
		order = "desc"
	}
	return models.Sort{SortBy: q.SortBy, SortOrder: order}
}
