// Package update реализует HTTP-обработчик полного обновления услуги.
package update

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/jayden648/shoesclean/internal/http/response"
	"github.com/jayden648/shoesclean/internal/lib/sl"
	"github.com/jayden648/shoesclean/internal/models"
	"github.com/jayden648/shoesclean/internal/validation"
)

// Handler обрабатывает PUT /api/services/{id}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает бизнес-логику обновления услуги.
type Service interface {
	Update(ctx context.Context, id int, rec models.ServiceRecord) (*models.Service, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Обновить услугу
// @Description Перезаписывает все поля услуги, кроме id и created_at.
// @Tags Services
// @Accept json
// @Produce json
// @Param id path int true "ID услуги"
// @Param request body models.ServiceRecord true "Новые данные услуги"
// @Success 200 {object} response.ServiceItem
// @Failure 400 {object} response.ErrorResponse "Некорректный ID или тело запроса"
// @Failure 404 {object} response.ErrorResponse "Услуга не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /api/services/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.service.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := validation.ValidateID(chi.URLParam(r, "id"))
	if err != nil {
		log.Info("invalid id", slog.String("id", chi.URLParam(r, "id")))
		response.WriteError(w, r, err, "Invalid ID format")
		return
	}

	rec, err := validation.DecodeService(r.Body)
	if err != nil {
		log.Info("invalid service payload", sl.Err(err))
		response.WriteError(w, r, err, "Invalid request body")
		return
	}

	svc, err := h.service.Update(r.Context(), id, rec)
	if err != nil {
		log.Error("failed to update service", slog.Int("id", id), sl.Err(err))
		response.WriteError(w, r, err, "Failed to update service")
		return
	}

	log.Info("service updated", slog.Int("id", id))
	render.JSON(w, r, response.ServiceItem{
		Success: true,
		Message: "Service updated successfully",
		Service: svc,
	})
}
