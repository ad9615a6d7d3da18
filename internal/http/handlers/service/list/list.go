// Package list реализует HTTP-обработчик списка услуг с пагинацией,
// поиском и сортировкой.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/jayden648/shoesclean/internal/http/response"
	"github.com/jayden648/shoesclean/internal/lib/sl"
	"github.com/jayden648/shoesclean/internal/models"
	"github.com/jayden648/shoesclean/internal/validation"
)

// Handler обрабатывает GET /api/services.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает бизнес-логику получения страницы услуг.
type Service interface {
	List(ctx context.Context, q models.ListQuery) (*models.ServicePage, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список услуг
// @Description Возвращает страницу услуг. Поиск по name и description, сортировка по столбцу из белого списка.
// @Tags Services
// @Produce json
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы (1..100)" default(10)
// @Param search query string false "Строка поиска"
// @Param sortBy query string false "Столбец сортировки" Enums(id, name, price, duration_minutes, created_at)
// @Param sortOrder query string false "Направление сортировки" Enums(asc, desc)
// @Success 200 {object} response.ServiceList
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /api/services [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.service.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q, err := validation.ParseList(r.URL.Query(), validation.ServiceSort)
	if err != nil {
		log.Info("invalid list parameters", sl.Err(err))
		response.WriteError(w, r, err, "Invalid query parameters")
		return
	}

	page, err := h.service.List(r.Context(), q)
	if err != nil {
		log.Error("failed to list services", sl.Err(err))
		response.WriteError(w, r, err, "Failed to fetch services")
		return
	}

	log.Debug("services listed", slog.Int("count", len(page.Services)), slog.Int64("total", page.Pagination.TotalItems))
	render.JSON(w, r, response.ServiceList{
		Success:    true,
		Services:   page.Services,
		Pagination: page.Pagination,
		Search:     response.Search(q),
		Sort:       response.Sort(q),
	})
}
