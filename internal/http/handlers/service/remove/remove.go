// Package remove реализует HTTP-обработчик удаления услуги.
package remove

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

// Handler обрабатывает DELETE /api/services/{id}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает бизнес-логику удаления услуги.
type Service interface {
	Remove(ctx context.Context, id int) (*models.Service, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить услугу
// @Tags Services
// @Produce json
// @Param id path int true "ID услуги"
// @Success 200 {object} response.ServiceDeleted
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Услуга не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /api/services/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.service.remove"
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

	deleted, err := h.service.Remove(r.Context(), id)
	if err != nil {
		log.Error("failed to delete service", slog.Int("id", id), sl.Err(err))
		response.WriteError(w, r, err, "Failed to delete service")
		return
	}

	log.Info("service deleted", slog.Int("id", id))
	render.JSON(w, r, response.ServiceDeleted{
		Success:        true,
		Message:        "Service deleted successfully",
		DeletedService: deleted,
	})
}
